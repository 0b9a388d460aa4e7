package service

import (
	"github.com/iac-appeals/aip-sync/internal/auth"
	"github.com/iac-appeals/aip-sync/internal/ccd"
	"github.com/iac-appeals/aip-sync/internal/codec"
	"github.com/iac-appeals/aip-sync/internal/docstore"
	"github.com/iac-appeals/aip-sync/internal/store"
)

type Services struct {
	stores    *store.Stores
	ccdClient *ccd.Client
	docs      *docstore.Client
	authProv  auth.Provider
	caseCodec *codec.Codec
}

func NewServices(
	stores *store.Stores,
	ccdClient *ccd.Client,
	docs *docstore.Client,
	authProv auth.Provider,
) *Services {
	return &Services{
		stores:    stores,
		ccdClient: ccdClient,
		docs:      docs,
		authProv:  authProv,
		caseCodec: codec.New(),
	}
}

func (s *Services) UpdateAppeal() UpdateAppealService {
	return NewUpdateAppealService(
		s.ccdClient,
		s.authProv,
		s.caseCodec,
		s.stores.Sessions(),
		s.stores.Audit(),
	)
}

func (s *Services) Evidence() EvidenceService {
	return NewEvidenceService(s.docs, s.authProv)
}
