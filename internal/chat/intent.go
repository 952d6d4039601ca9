package chat

import "strings"

// Intent is the purpose the resolver assigns to a chat message.
type Intent string

const (
	IntentGreeting          Intent = "greeting"
	IntentListFolders       Intent = "list_folders"
	IntentShowFolder        Intent = "show_folder"
	IntentListImages        Intent = "list_images"
	IntentListPDFs          Intent = "list_pdfs"
	IntentCount             Intent = "count"
	IntentRecent            Intent = "recent"
	IntentSearchDescription Intent = "search_description"
	IntentSearchFilename    Intent = "search_filename"
	IntentGeneralSearch     Intent = "general_search"
	IntentHelp              Intent = "help"
	IntentThanks            Intent = "thanks"
	IntentGoodbye           Intent = "goodbye"
	IntentFallback          Intent = "fallback_search"

	// IntentNoMatch is never returned by Resolve. The assembler reports it
	// when the fallback search comes back empty.
	IntentNoMatch Intent = "no_match"
)

// RecentKind selects which collection a Recent request sorts.
type RecentKind string

const (
	RecentImages RecentKind = "image"
	RecentPDFs   RecentKind = "pdf"
)

// Resolution is the outcome of resolving one message.
//
// Param holds the folder name for ShowFolder, the keyword for the two
// filtered searches, the stripped search term for GeneralSearch and the
// untouched original message for Fallback. It is empty for every other
// intent and for folder patterns that capture no name.
type Resolution struct {
	Intent     Intent
	Param      string
	RecentKind RecentKind
}

// Resolve classifies message by running the rule cascade over its trimmed,
// lower-cased form. The first rule that matches wins. Resolve is pure: the
// same message always yields the same Resolution.
func Resolve(message string) Resolution {
	normalized := strings.ToLower(strings.TrimSpace(message))

	for _, r := range rules {
		res, ok := r.match(normalized)
		if !ok {
			continue
		}
		res.Intent = r.intent
		return res
	}

	return Resolution{Intent: IntentFallback, Param: message}
}
