package codec

import (
	"fmt"

	"github.com/iac-appeals/aip-sync/internal/model"
)

// Codec is the bidirectional transform between the session Appeal aggregate
// and the flat CCD case record. Both directions are pure functions of their
// inputs. They are not exact inverses: ToCaseData omits session-only
// bookkeeping (isEdit flags, the document map itself) and ToAppeal
// synthesizes derived fields that have no back-mapping.
type Codec struct{}

func New() *Codec {
	return &Codec{}
}

// ToCaseData encodes the session appeal for submission to CCD. A field is
// emitted only when the internal model actually set it, except the
// fee/remission family which always carries an explicit value to satisfy
// CCD's partial-update semantics.
//
// Document references are resolved through the appeal's document map; an
// unmapped file id is an error, since dropping an item on update would
// silently delete it on the CCD side.
func (c *Codec) ToCaseData(appeal *model.Appeal) (model.CaseData, error) {
	caseData := model.CaseData{
		JourneyType: model.JourneyTypeAip,
	}

	if err := c.encodeApplication(appeal, &caseData); err != nil {
		return model.CaseData{}, err
	}
	if err := c.encodeReasonsForAppeal(appeal, &caseData); err != nil {
		return model.CaseData{}, err
	}
	if err := c.encodeClarifyingQuestions(appeal, &caseData); err != nil {
		return model.CaseData{}, err
	}
	if err := c.encodeCmaRequirements(appeal, &caseData); err != nil {
		return model.CaseData{}, err
	}
	if err := c.encodeFtpa(appeal, &caseData); err != nil {
		return model.CaseData{}, err
	}
	if err := c.encodeRemission(appeal, &caseData); err != nil {
		return model.CaseData{}, err
	}

	return caseData, nil
}

func (c *Codec) encodeApplication(appeal *model.Appeal, caseData *model.CaseData) error {
	application := appeal.Application

	if application.HomeOfficeRefNumber != "" {
		caseData.HomeOfficeReferenceNumber = application.HomeOfficeRefNumber
	}

	if application.DateLetterSent != nil && application.DateLetterSent.Year != "" {
		iso, err := ToIsoDate(*application.DateLetterSent)
		if err != nil {
			return fmt.Errorf("encoding letter sent date: %w", err)
		}
		caseData.HomeOfficeDecisionDate = iso
		// submissionOutOfTime travels with the decision date: CCD needs an
		// explicit No, not an absent field, once the date is known.
		if application.IsAppealLate != nil && *application.IsAppealLate {
			caseData.SubmissionOutOfTime = model.Yes
		} else {
			caseData.SubmissionOutOfTime = model.No
		}
	}

	if application.LateAppeal != nil {
		if application.LateAppeal.Reason != "" {
			caseData.ApplicationOutOfTimeExplanation = application.LateAppeal.Reason
		}
		if application.LateAppeal.Evidence != nil {
			doc, err := c.evidenceToDocument(*application.LateAppeal.Evidence, appeal.DocumentMap)
			if err != nil {
				return fmt.Errorf("encoding late appeal evidence: %w", err)
			}
			caseData.ApplicationOutOfTimeDocument = &doc
		}
	}

	personal := application.PersonalDetails
	if personal.GivenNames != "" {
		caseData.AppellantGivenNames = personal.GivenNames
	}
	if personal.FamilyName != "" {
		caseData.AppellantFamilyName = personal.FamilyName
	}
	if personal.Dob != nil && personal.Dob.Year != "" {
		iso, err := ToIsoDate(*personal.Dob)
		if err != nil {
			return fmt.Errorf("encoding date of birth: %w", err)
		}
		caseData.AppellantDateOfBirth = iso
	}
	if personal.Nationality != "" {
		caseData.AppellantNationalities = []model.NationalityCollection{
			{Value: model.Nationality{Code: personal.Nationality}},
		}
	}
	if personal.Address != nil && personal.Address.Line1 != "" {
		caseData.AppellantAddress = &model.CCDAddress{
			AddressLine1: personal.Address.Line1,
			AddressLine2: personal.Address.Line2,
			PostTown:     personal.Address.City,
			County:       personal.Address.County,
			PostCode:     personal.Address.Postcode,
			Country:      "United Kingdom",
		}
		caseData.AppellantHasFixedAddress = model.Yes
	}

	if application.AppealType != "" {
		caseData.AppealType = application.AppealType
	}

	contact := application.ContactDetails
	if contact.Email != "" || contact.Phone != "" {
		subscription := model.Subscription{
			Subscriber: model.SubscriberAppellant,
			WantsEmail: model.No,
			WantsSms:   model.No,
		}
		if contact.WantsEmail && contact.Email != "" {
			subscription.WantsEmail = model.Yes
			subscription.Email = contact.Email
		}
		if contact.WantsSms && contact.Phone != "" {
			subscription.WantsSms = model.Yes
			subscription.MobileNumber = contact.Phone
		}
		caseData.Subscriptions = []model.SubscriptionCollection{{Value: subscription}}
	}

	return nil
}

func (c *Codec) encodeReasonsForAppeal(appeal *model.Appeal, caseData *model.CaseData) error {
	reasons := appeal.ReasonsForAppeal
	if reasons.ApplicationReason != "" {
		caseData.ReasonsForAppealDecision = reasons.ApplicationReason
	}
	if len(reasons.Evidences) > 0 {
		collections, err := c.evidencesToCollections(reasons.Evidences, appeal.DocumentMap)
		if err != nil {
			return fmt.Errorf("encoding reasons for appeal evidence: %w", err)
		}
		caseData.ReasonsForAppealDocuments = collections
	}
	return nil
}

func (c *Codec) encodeClarifyingQuestions(appeal *model.Appeal, caseData *model.CaseData) error {
	if len(appeal.DraftClarifyingQuestionsAnswers) == 0 {
		return nil
	}
	collections := make([]model.ClarifyingQuestionCollection, 0, len(appeal.DraftClarifyingQuestionsAnswers))
	for _, question := range appeal.DraftClarifyingQuestionsAnswers {
		evidence, err := c.evidencesToCollections(question.SupportingEvidence, appeal.DocumentMap)
		if err != nil {
			return fmt.Errorf("encoding clarifying question evidence: %w", err)
		}
		collections = append(collections, model.ClarifyingQuestionCollection{
			ID: question.ID,
			Value: model.ClarifyingQuestionValue{
				Question:           question.Question,
				Answer:             question.Answer,
				DateSent:           question.DateSent,
				DueDate:            question.DueDate,
				SupportingEvidence: evidence,
			},
		})
	}
	caseData.DraftClarifyingQuestionsAnswers = collections
	return nil
}

func (c *Codec) encodeCmaRequirements(appeal *model.Appeal, caseData *model.CaseData) error {
	cma := appeal.CmaRequirements
	if cma.AccessNeeds == nil && cma.OtherNeeds == nil && len(cma.DatesToAvoid) == 0 {
		return nil
	}

	nested := &model.CmaRequirementsData{}

	if access := cma.AccessNeeds; access != nil {
		caseData.IsInterpreterServicesNeeded = boolPtrToYesNo(access.IsInterpreterServicesNeeded)
		caseData.IsHearingLoopNeeded = boolPtrToYesNo(access.IsHearingLoopNeeded)
		caseData.IsHearingRoomNeeded = boolPtrToYesNo(access.IsHearingRoomNeeded)
		nested.InterpreterLanguage = access.InterpreterLanguage
	}

	if other := cma.OtherNeeds; other != nil {
		caseData.MultimediaEvidence = boolPtrToYesNo(other.MultimediaEvidence)
		caseData.SingleSexCourt = boolPtrToYesNo(other.SingleSexAppointment)
		caseData.InCameraCourt = boolPtrToYesNo(other.PrivateAppointment)
		caseData.PhysicalOrMentalHealthIssues = boolPtrToYesNo(other.HealthConditions)
		caseData.PastExperiences = boolPtrToYesNo(other.PastExperiences)
		caseData.AdditionalRequests = boolPtrToYesNo(other.AnythingElse)

		nested.MultimediaEvidenceDescription = other.BringOwnMultimediaEquipmentReason
		nested.SingleSexCourtType = other.SingleSexTypeAppointment
		nested.SingleSexCourtTypeDescription = other.SingleSexAppointmentReason
		nested.InCameraCourtDescription = other.PrivateAppointmentReason
		nested.HealthIssuesDescription = other.HealthConditionsReason
		nested.PastExperiencesDescription = other.PastExperiencesReason
		nested.AdditionalRequestsDescription = other.AnythingElseReason
	}

	caseData.CmaRequirements = nested

	if len(cma.DatesToAvoid) > 0 {
		caseData.DatesToAvoidYesNo = model.Yes
		dates := make([]model.DateToAvoidCollection, 0, len(cma.DatesToAvoid))
		for _, date := range cma.DatesToAvoid {
			iso, err := ToIsoDate(date.Date)
			if err != nil {
				return fmt.Errorf("encoding date to avoid: %w", err)
			}
			dates = append(dates, model.DateToAvoidCollection{
				Value: model.DateToAvoidValue{
					DateToAvoid:       iso,
					DateToAvoidReason: date.Reason,
				},
			})
		}
		caseData.DatesToAvoid = dates
	}
	return nil
}

func (c *Codec) encodeFtpa(appeal *model.Appeal, caseData *model.CaseData) error {
	ftpa := appeal.Ftpa
	if ftpa.AppellantGrounds != "" {
		caseData.FtpaAppellantGrounds = ftpa.AppellantGrounds
	}
	if len(ftpa.AppellantEvidence) > 0 {
		collections, err := c.evidencesToCollections(ftpa.AppellantEvidence, appeal.DocumentMap)
		if err != nil {
			return fmt.Errorf("encoding ftpa evidence: %w", err)
		}
		caseData.FtpaAppellantEvidenceDocuments = collections
	}
	if ftpa.AppellantSubmissionDate != "" {
		caseData.FtpaAppellantApplicationDate = ftpa.AppellantSubmissionDate
	}
	return nil
}

func (c *Codec) encodeRemission(appeal *model.Appeal, caseData *model.CaseData) error {
	application := appeal.Application

	// Always-emit family: nil pointers serialize as explicit nulls and the
	// persisted flag defaults to No.
	if application.FeeSupportPersisted {
		caseData.FeeSupportPersisted = model.Yes
	} else {
		caseData.FeeSupportPersisted = model.No
	}
	caseData.RemissionOption = optionalString(application.RemissionOption)
	caseData.RemissionDecision = optionalString(application.RemissionDecision)
	caseData.AsylumSupportRefNumber = optionalString(application.AsylumSupportRefNumber)
	caseData.HelpWithFeesOption = optionalString(application.HelpWithFeesOption)
	caseData.HelpWithFeesRefNumber = optionalString(application.HelpWithFeesRefNumber)

	if len(application.LocalAuthorityLetters) > 0 {
		collections, err := c.evidencesToCollections(application.LocalAuthorityLetters, appeal.DocumentMap)
		if err != nil {
			return fmt.Errorf("encoding local authority letters: %w", err)
		}
		caseData.LocalAuthorityLetters = collections
	}
	return nil
}

// ToAppeal decodes a CCD case into a fresh session aggregate. The document
// map is rebuilt from scratch while walking document fields, so storage URLs
// never leak past this boundary.
func (c *Codec) ToAppeal(details model.CaseDetails) (*model.Appeal, error) {
	caseData := details.CaseData

	var documentMap []model.DocumentMapEntry

	dateLetterSent, err := FromCcdDate(caseData.HomeOfficeDecisionDate)
	if err != nil {
		return nil, fmt.Errorf("decoding home office decision date: %w", err)
	}
	dateOfBirth, err := FromCcdDate(caseData.AppellantDateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("decoding date of birth: %w", err)
	}

	appeal := &model.Appeal{
		CcdCaseID:             details.ID,
		AppealStatus:          model.AppealStatus(details.State),
		AppealCreatedDate:     details.CreatedDate,
		AppealLastModified:    details.LastModified,
		AppealReferenceNumber: caseData.AppealReferenceNumber,
	}

	application := &appeal.Application
	application.HomeOfficeRefNumber = caseData.HomeOfficeReferenceNumber
	application.AppealType = caseData.AppealType
	application.DateLetterSent = dateLetterSent
	application.IsAppealLate = yesNoToBoolPtr(caseData.SubmissionOutOfTime)

	application.PersonalDetails = model.PersonalDetails{
		GivenNames: caseData.AppellantGivenNames,
		FamilyName: caseData.AppellantFamilyName,
		Dob:        dateOfBirth,
	}
	if len(caseData.AppellantNationalities) > 0 {
		application.PersonalDetails.Nationality = caseData.AppellantNationalities[0].Value.Code
	}
	if address := caseData.AppellantAddress; address != nil {
		application.PersonalDetails.Address = &model.Address{
			Line1:    address.AddressLine1,
			Line2:    address.AddressLine2,
			City:     address.PostTown,
			County:   address.County,
			Postcode: address.PostCode,
		}
	}

	application.ContactDetails = decodeContactDetails(caseData.Subscriptions)

	if caseData.SubmissionOutOfTime == model.Yes {
		lateAppeal := &model.LateAppeal{Reason: caseData.ApplicationOutOfTimeExplanation}
		if doc := caseData.ApplicationOutOfTimeDocument; doc != nil && doc.DocumentFilename != "" {
			fileID := AddToDocumentMap(doc.DocumentURL, &documentMap)
			lateAppeal.Evidence = &model.Evidence{
				ID:     doc.DocumentFilename,
				FileID: fileID,
				Name:   FileIDToName(doc.DocumentFilename),
			}
		}
		if lateAppeal.Reason != "" || lateAppeal.Evidence != nil {
			application.LateAppeal = lateAppeal
		}
	}

	appeal.ReasonsForAppeal = model.ReasonsForAppeal{
		ApplicationReason: caseData.ReasonsForAppealDecision,
		Evidences:         c.collectionsToEvidences(caseData.ReasonsForAppealDocuments, &documentMap),
	}

	// Respondent evidence is withheld from the appellant while the case is
	// still collecting it.
	if len(caseData.RespondentDocuments) > 0 && details.State != string(model.StatusAwaitingRespondentEvidence) {
		respondentDocuments := make([]model.RespondentDocument, 0, len(caseData.RespondentDocuments))
		for _, doc := range caseData.RespondentDocuments {
			fileID := AddToDocumentMap(doc.Value.Document.DocumentURL, &documentMap)
			respondentDocuments = append(respondentDocuments, model.RespondentDocument{
				DateUploaded: doc.Value.DateUploaded,
				Evidence: model.Evidence{
					FileID: fileID,
					Name:   doc.Value.Document.DocumentFilename,
				},
			})
		}
		appeal.RespondentDocuments = respondentDocuments
	}

	for _, direction := range caseData.Directions {
		appeal.Directions = append(appeal.Directions, model.Direction{
			ID:          direction.ID,
			Tag:         direction.Value.Tag,
			Parties:     direction.Value.Parties,
			DateDue:     direction.Value.DateDue,
			DateSent:    direction.Value.DateSent,
			Explanation: direction.Value.Explanation,
			UniqueID:    direction.Value.UniqueID,
		})
	}

	appeal.DraftClarifyingQuestionsAnswers = c.decodeClarifyingQuestions(caseData.DraftClarifyingQuestionsAnswers, &documentMap)
	if len(appeal.DraftClarifyingQuestionsAnswers) == 0 {
		appeal.DraftClarifyingQuestionsAnswers = c.decodeClarifyingQuestions(caseData.ClarifyingQuestionsAnswers, &documentMap)
	}

	for _, wrapper := range caseData.MakeAnApplications {
		appeal.MakeAnApplications = append(appeal.MakeAnApplications, model.MakeAnApplication{
			ID:             wrapper.ID,
			Type:           wrapper.Value.Type,
			Details:        wrapper.Value.Details,
			Applicant:      wrapper.Value.Applicant,
			Decision:       wrapper.Value.Decision,
			DecisionReason: wrapper.Value.DecisionReason,
			DecisionDate:   wrapper.Value.DecisionDate,
			Date:           wrapper.Value.Date,
			State:          wrapper.Value.State,
			Evidence:       c.collectionsToEvidences(wrapper.Value.Evidence, &documentMap),
		})
	}

	appeal.OutOfTimeDecisionType = caseData.OutOfTimeDecisionType
	appeal.OutOfTimeDecisionMaker = caseData.OutOfTimeDecisionMaker
	appeal.RemovedFromOnlineReason = caseData.RemovedFromOnlineReason
	appeal.RemovedFromOnlineDate = caseData.RemovedFromOnlineDate

	appeal.Ftpa = model.FtpaDetails{
		ApplicantType:                 caseData.FtpaApplicantType,
		AppellantGrounds:              caseData.FtpaAppellantGrounds,
		AppellantEvidence:             c.collectionsToEvidences(caseData.FtpaAppellantEvidenceDocuments, &documentMap),
		AppellantSubmissionDate:       caseData.FtpaAppellantApplicationDate,
		AppellantDecisionOutcomeType:  caseData.FtpaAppellantDecisionOutcomeType,
		RespondentDecisionOutcomeType: caseData.FtpaRespondentDecisionOutcomeType,
	}

	application.FeeSupportPersisted = caseData.FeeSupportPersisted == model.Yes
	application.RemissionOption = stringValue(caseData.RemissionOption)
	application.RemissionDecision = stringValue(caseData.RemissionDecision)
	application.AsylumSupportRefNumber = stringValue(caseData.AsylumSupportRefNumber)
	application.HelpWithFeesOption = stringValue(caseData.HelpWithFeesOption)
	application.HelpWithFeesRefNumber = stringValue(caseData.HelpWithFeesRefNumber)
	application.LocalAuthorityLetters = c.collectionsToEvidences(caseData.LocalAuthorityLetters, &documentMap)

	appeal.DocumentMap = documentMap
	return appeal, nil
}

func (c *Codec) decodeClarifyingQuestions(collections []model.ClarifyingQuestionCollection, documentMap *[]model.DocumentMapEntry) []model.ClarifyingQuestion {
	if len(collections) == 0 {
		return nil
	}
	questions := make([]model.ClarifyingQuestion, 0, len(collections))
	for _, wrapper := range collections {
		questions = append(questions, model.ClarifyingQuestion{
			ID:                 wrapper.ID,
			Question:           wrapper.Value.Question,
			Answer:             wrapper.Value.Answer,
			DateSent:           wrapper.Value.DateSent,
			DueDate:            wrapper.Value.DueDate,
			SupportingEvidence: c.collectionsToEvidences(wrapper.Value.SupportingEvidence, documentMap),
		})
	}
	return questions
}

func (c *Codec) collectionsToEvidences(collections []model.SupportingEvidenceCollection, documentMap *[]model.DocumentMapEntry) []model.Evidence {
	if len(collections) == 0 {
		return nil
	}
	evidences := make([]model.Evidence, 0, len(collections))
	for _, wrapper := range collections {
		fileID := AddToDocumentMap(wrapper.Value.DocumentURL, documentMap)
		evidences = append(evidences, model.Evidence{
			ID:     wrapper.Value.DocumentFilename,
			FileID: fileID,
			Name:   FileIDToName(wrapper.Value.DocumentFilename),
		})
	}
	return evidences
}

func (c *Codec) evidencesToCollections(evidences []model.Evidence, documentMap []model.DocumentMapEntry) ([]model.SupportingEvidenceCollection, error) {
	if len(evidences) == 0 {
		return nil, nil
	}
	collections := make([]model.SupportingEvidenceCollection, 0, len(evidences))
	for _, evidence := range evidences {
		doc, err := c.evidenceToDocument(evidence, documentMap)
		if err != nil {
			return nil, err
		}
		collections = append(collections, model.SupportingEvidenceCollection{Value: doc})
	}
	return collections, nil
}

func (c *Codec) evidenceToDocument(evidence model.Evidence, documentMap []model.DocumentMapEntry) (model.SupportingDocument, error) {
	url, err := DocumentMapToDocStoreURL(evidence.FileID, documentMap)
	if err != nil {
		return model.SupportingDocument{}, err
	}
	filename := evidence.ID
	if filename == "" {
		filename = evidence.Name
	}
	return model.SupportingDocument{
		DocumentFilename:  filename,
		DocumentURL:       url,
		DocumentBinaryURL: url + "/binary",
	}, nil
}

func decodeContactDetails(subscriptions []model.SubscriptionCollection) model.ContactDetails {
	for _, wrapper := range subscriptions {
		if wrapper.Value.Subscriber != model.SubscriberAppellant {
			continue
		}
		return model.ContactDetails{
			Email:      wrapper.Value.Email,
			WantsEmail: wrapper.Value.WantsEmail == model.Yes,
			Phone:      wrapper.Value.MobileNumber,
			WantsSms:   wrapper.Value.WantsSms == model.Yes,
		}
	}
	return model.ContactDetails{}
}

func boolPtrToYesNo(value *bool) model.YesOrNo {
	if value == nil {
		return ""
	}
	if *value {
		return model.Yes
	}
	return model.No
}

func yesNoToBoolPtr(value model.YesOrNo) *bool {
	switch value {
	case model.Yes:
		b := true
		return &b
	case model.No:
		b := false
		return &b
	}
	return nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
