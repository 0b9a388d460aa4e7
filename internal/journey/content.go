package journey

// Overview page copy. Deadline placeholders are interpolated by the frontend
// template, so the raw token stays in the string here.

const deadlineToken = "{{ applicationNextStep.deadline }}"

const (
	textNothingToDo = "Nothing to do next"

	textAppealStartedDescription = "You need to answer a few questions about yourself and your appeal to get started."
	textAppealStartedFinish      = "You need to finish telling us about your appeal."
	textContinue                 = "Continue"

	textAppealSubmittedSent    = "Your appeal details have been sent to the Tribunal."
	textAppealSubmittedContact = "A Tribunal Caseworker will contact you to tell you what happens next. This should be by " + deadlineToken + " but it might take longer than that."

	textRemissionFee      = "There is a fee for this appeal. You told the Tribunal that you believe you do not have to pay some or all of the fee."
	textRemissionChecking = "The Tribunal will check the information you sent and let you know if you need to pay a fee."
	textRemissionByDate   = "This should be by " + deadlineToken + " but it might take longer than that."

	textLateAppealSubmittedDecide = "A Tribunal Caseworker will decide if your appeal can continue. This should be by " + deadlineToken + " but it might take longer than that."

	textLateAppealRejected = "Your appeal cannot continue. Read the reasons for this decision."

	textPendingPaymentSent = "Your appeal details have been sent to the Tribunal."
	textPendingPaymentDue  = "You need to pay the fee for this appeal."
	textPendingPaymentCta  = "Pay for this appeal"

	textAwaitingRespondentEvidence = "The Home Office is preparing the documents relevant to your case. When they are ready, the Tribunal will tell you what to do next."

	textAwaitingReasonsDescription = "Tell us why you think the Home Office decision to refuse your claim is wrong."
	textAwaitingReasonsPartial     = "You need to finish telling us why you think the Home Office decision to refuse your claim is wrong."
	textRespondBy                  = "You need to respond by " + deadlineToken + "."
	textNowRespondBy               = "You now need to respond by " + deadlineToken + "."
	textStillRespondBy             = "You still need to respond by " + deadlineToken + "."
	textAskForMoreTimeDescription  = "The Tribunal is considering your request for more time. You should continue with your appeal while you wait for a decision."
	textAskForMoreTimeRespondBy    = "Your current deadline to respond is " + deadlineToken + "."

	textReasonsSubmitted = "You have told us why you think the Home Office decision is wrong. A Tribunal Caseworker will contact you to tell you what to do next. This should be by " + deadlineToken + " but it might take longer."

	textRespondentReview   = "The Home Office is reviewing your appeal and will respond by " + deadlineToken + ". The Tribunal will then tell you what to do next."
	textDecisionWithdrawn  = "The Home Office has withdrawn its decision in your case. The Tribunal will contact you soon to tell you what this means for your appeal."
	textDecisionMaintained = "The Home Office has reviewed your appeal and has decided to maintain its decision. A Tribunal Caseworker will look at the appeal and the Home Office response and tell you what to do next."

	textAwaitingClarifyingQuestions  = "You need to answer some questions about your appeal."
	textClarifyingQuestionsSubmitted = "You have answered the Tribunal's questions about your appeal. A Tribunal Caseworker will contact you to tell you what to do next."

	textAwaitingCmaRequirements  = "You need to tell us if you will need anything at your case management appointment, like an interpreter or step-free access."
	textCmaRequirementsSubmitted = "A Tribunal Caseworker is looking at your answers and will contact you with details of your case management appointment and tell you what to do next."
	textCmaAdjustmentsAgreed     = "The Tribunal has agreed the adjustments you asked for at your case management appointment. You will get the appointment details soon."
	textCmaListed                = "The details of your case management appointment have been sent to you. You must attend the appointment."

	textSubmitHearingRequirements = "You need to tell us if you will need anything at your hearing, like an interpreter or step-free access."

	textListing = "A Tribunal Caseworker is looking at your answers and will contact you with the details of your hearing and to tell you what to do next."

	textPrepareForHearing = "The details of your hearing have been sent to you. You should now start preparing for the hearing."
	textFinalBundling     = "The Tribunal is preparing the documents for your hearing. They will be sent to you before the hearing takes place."
	textPreHearing        = "Your hearing bundle is ready. You should read it carefully and use it to prepare for your hearing."

	textDecided        = "The Tribunal has made a decision on your appeal. Read the Decision and Reasons document carefully."
	textDecidedFtpaCta = "If you think the Tribunal made a legal mistake in its decision, you can apply for permission to appeal to the Upper Tribunal."

	textFtpaSubmittedAppellant  = "You have applied for permission to appeal to the Upper Tribunal. A judge will decide your application and the Tribunal will contact you when there is a decision."
	textFtpaSubmittedRespondent = "The Home Office has applied for permission to appeal to the Upper Tribunal. A judge will decide the application and the Tribunal will contact you when there is a decision."

	textFtpaGranted          = "The application for permission to appeal to the Upper Tribunal has been granted. The Upper Tribunal will contact you about what happens next."
	textFtpaPartiallyGranted = "The application for permission to appeal to the Upper Tribunal has been partially granted. Read the decision document to see which grounds can go forward."
	textFtpaRefused          = "The application for permission to appeal to the Upper Tribunal has been refused. Read the decision document for the reasons."
	textFtpaNotAdmitted      = "The application for permission to appeal was not admitted. Read the decision document for the reasons."
	textFtpaReheard          = "The Tribunal has decided that your appeal will be heard again. The Tribunal will contact you about what happens next."
	textFtpaRemade           = "The Tribunal has remade the decision on your appeal. Read the new Decision and Reasons document carefully."

	textAppealTakenOffline = "Your appeal is now being managed offline. The Tribunal will contact you by post or email to tell you what happens next."

	textEnded               = "Your appeal has now ended. Read the decision document for the reasons."
	textEndedContactIfWrong = "If you think the appeal should not have ended, contact the Tribunal."

	infoHelpfulTitle        = "Helpful Information"
	infoCaseworkerLink      = "What is a Tribunal Caseworker?"
	infoHomeOfficeDocsTitle = "Understanding your Home Office documents"
	usefulDocumentsTitle    = "Useful documents"
	usefulHomeOfficeBundle  = "Home Office documents about your case"
)
