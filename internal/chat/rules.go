package chat

import (
	"regexp"
	"strings"
)

// matcher inspects a normalized message and reports whether its rule fires.
type matcher func(msg string) (Resolution, bool)

type rule struct {
	intent Intent
	match  matcher
}

// rules is the cascade in evaluation order. Earlier rules shadow later ones,
// so "find my vacation folder" is a ShowFolder and never a GeneralSearch.
var rules = []rule{
	{IntentGreeting, containsAny(greetingPhrases)},
	{IntentListFolders, containsAny(listFolderPhrases)},
	{IntentShowFolder, firstCapture(folderPatterns)},
	{IntentListImages, containsAny(listImagePhrases)},
	{IntentListPDFs, containsAny(listPDFPhrases)},
	{IntentCount, containsAny(countPhrases)},
	{IntentRecent, recent},
	{IntentSearchDescription, firstCapture(descriptionPatterns)},
	{IntentSearchFilename, firstCapture(filenamePatterns)},
	{IntentGeneralSearch, generalSearch},
	{IntentHelp, containsAny(helpPhrases)},
	{IntentThanks, containsAny(thanksPhrases)},
	{IntentGoodbye, containsAny(goodbyePhrases)},
}

var (
	greetingPhrases = []string{"hello", "hi", "hey", "greetings", "good morning", "good afternoon", "good evening"}

	listFolderPhrases = []string{
		"show folders", "list folders", "all folders", "show all folders", "display folders",
		"what folders", "my folders", "view folders", "get folders", "folders list",
	}

	listImagePhrases = []string{
		"show all images", "all images", "list images", "display images", "show images",
		"view all images", "get all images", "my images", "show me images", "display all images",
	}

	listPDFPhrases = []string{
		"show pdfs", "all pdfs", "list pdfs", "display pdfs", "show documents",
		"all documents", "list documents", "my pdfs", "view pdfs", "get pdfs",
	}

	countPhrases = []string{
		"how many", "count", "total", "statistics", "stats",
		"number of", "how much", "quantity", "amount", "summary",
	}

	recentPhrases = []string{"recent", "latest", "newest", "new", "last", "most recent"}

	searchTriggers = []string{"find", "search", "look for", "looking for", "get", "show me", "locate", "discover", "fetch"}

	// searchStopPhrases are cut out of the message, in this order, to leave
	// the search term. Removal is plain substring replacement, so "findable"
	// loses its "find".
	searchStopPhrases = []string{
		"find", "search", "show me", "show", "get", "look for", "looking for",
		"images about", "images of", "pictures of", "locate", "discover", "fetch", "for",
	}

	helpPhrases    = []string{"help", "commands", "what can you do", "capabilities", "options"}
	thanksPhrases  = []string{"thank", "thanks", "appreciate"}
	goodbyePhrases = []string{"bye", "goodbye", "see you"}
)

// The first four folder patterns have no capture group. They still claim
// the message, which then resolves to an empty folder name.
var folderPatterns = compile(
	`show .* folder`,
	`display .* folder`,
	`view .* folder`,
	`open .* folder`,
	`show folder (.*)`,
	`(.*) folder images`,
	`(.*) folder contents`,
	`files in (.*) folder`,
	`what.*in (.*) folder`,
	`show me (.*) folder`,
	`list (.*) folder`,
	`get (.*) folder`,
	`(.*) folder files`,
	`see (.*) folder`,
	`browse (.*) folder`,
	`(?:find|search for|look for|locate) (?:my |the )?(.*) folder`,
)

var descriptionPatterns = compile(
	`with description (.*)`,
	`description (.*)`,
	`described as (.*)`,
	`with desc (.*)`,
	`description contains (.*)`,
	`desc (.*)`,
	`having description (.*)`,
	`description is (.*)`,
	`desc is (.*)`,
	`description has (.*)`,
)

var filenamePatterns = compile(
	`named (.*)`,
	`filename (.*)`,
	`file called (.*)`,
	`file named (.*)`,
	`with name (.*)`,
	`name contains (.*)`,
	`name is (.*)`,
	`called (.*)`,
	`file name (.*)`,
	`with filename (.*)`,
)

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

func containsAny(phrases []string) matcher {
	return func(msg string) (Resolution, bool) {
		return Resolution{}, hasAny(msg, phrases)
	}
}

// firstCapture fires on the first pattern found anywhere in msg and takes
// its first group, trimmed, as the parameter.
func firstCapture(patterns []*regexp.Regexp) matcher {
	return func(msg string) (Resolution, bool) {
		for _, re := range patterns {
			m := re.FindStringSubmatch(msg)
			if m == nil {
				continue
			}
			var param string
			if len(m) > 1 {
				param = strings.TrimSpace(m[1])
			}
			return Resolution{Param: param}, true
		}
		return Resolution{}, false
	}
}

func recent(msg string) (Resolution, bool) {
	if !hasAny(msg, recentPhrases) {
		return Resolution{}, false
	}
	if strings.Contains(msg, "pdf") || strings.Contains(msg, "document") {
		return Resolution{RecentKind: RecentPDFs}, true
	}
	return Resolution{RecentKind: RecentImages}, true
}

// generalSearch declines when stripping leaves nothing to search for, which
// lets "get" on its own fall through to the later rules.
func generalSearch(msg string) (Resolution, bool) {
	if !hasAny(msg, searchTriggers) {
		return Resolution{}, false
	}
	term := SearchTerm(msg)
	if term == "" {
		return Resolution{}, false
	}
	return Resolution{Param: term}, true
}

// SearchTerm removes every stop phrase from msg, trimming after each removal.
func SearchTerm(msg string) string {
	term := msg
	for _, phrase := range searchStopPhrases {
		term = strings.TrimSpace(strings.ReplaceAll(term, phrase, ""))
	}
	return term
}

func hasAny(msg string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
