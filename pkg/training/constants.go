package training

const (
	// UtterPrefix marks actions that simply send a response to the user.
	UtterPrefix = "utter_"

	// RetrievalIntentDelimiter separates a retrieval intent from its
	// response key, e.g. "chitchat/ask_name".
	RetrievalIntentDelimiter = "/"

	// IsRetrievalIntentKey is the intent property flagging an intent whose
	// response is selected from candidate variants at runtime.
	IsRetrievalIntentKey = "is_retrieval_intent"

	// DefaultLanguage is assumed when no language is given for NLU data.
	DefaultLanguage = "en"
)

// Built-in action names with dedicated runtime behavior.
const (
	ActionListenName       = "action_listen"
	ActionRestartName      = "action_restart"
	ActionSessionStartName = "action_session_start"
	ActionBackName         = "action_back"
)

// DefaultActionNames lists every action the dialogue runtime provides out of
// the box. E2E training synthesizes one action example per entry so policies
// can predict them without the user declaring them in the domain.
var DefaultActionNames = []string{
	ActionListenName,
	ActionRestartName,
	ActionSessionStartName,
	"action_default_fallback",
	"action_deactivate_form",
	"action_revert_fallback_events",
	"action_default_ask_affirmation",
	"action_default_ask_rephrase",
	ActionBackName,
}
