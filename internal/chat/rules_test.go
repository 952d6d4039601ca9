package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRules_CascadeOrder(t *testing.T) {
	want := []Intent{
		IntentGreeting,
		IntentListFolders,
		IntentShowFolder,
		IntentListImages,
		IntentListPDFs,
		IntentCount,
		IntentRecent,
		IntentSearchDescription,
		IntentSearchFilename,
		IntentGeneralSearch,
		IntentHelp,
		IntentThanks,
		IntentGoodbye,
	}

	got := make([]Intent, len(rules))
	for i, r := range rules {
		got[i] = r.intent
	}

	assert.Equal(t, want, got)
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		name    string
		message string
		want    Resolution
	}{
		{"Greeting", "Hello there", Resolution{Intent: IntentGreeting}},
		{"Greeting matches inside words", "this is a test", Resolution{Intent: IntentGreeting}},
		{"List folders", "show folders", Resolution{Intent: IntentListFolders}},
		{"Show folder by name", "Show folder Vacation", Resolution{Intent: IntentShowFolder, Param: "vacation"}},
		{"Folder beats general search", "find my vacation folder", Resolution{Intent: IntentShowFolder, Param: "vacation"}},
		{"Folder pattern without capture", "show my vacation folder", Resolution{Intent: IntentShowFolder}},
		{"Files in folder", "files in work folder", Resolution{Intent: IntentShowFolder, Param: "work"}},
		{"List images", "show all images", Resolution{Intent: IntentListImages}},
		{"Normalizes case and space", "  SHOW ALL IMAGES  ", Resolution{Intent: IntentListImages}},
		{"List PDFs", "list pdfs", Resolution{Intent: IntentListPDFs}},
		{"Count", "how many files do I have", Resolution{Intent: IntentCount}},
		{"Recent PDFs", "recent pdfs", Resolution{Intent: IntentRecent, RecentKind: RecentPDFs}},
		{"Recent images", "latest uploads", Resolution{Intent: IntentRecent, RecentKind: RecentImages}},
		{"Recent matches inside words", "recently added", Resolution{Intent: IntentRecent, RecentKind: RecentImages}},
		{"Description search", "with description sunset", Resolution{Intent: IntentSearchDescription, Param: "sunset"}},
		{"Filename search", "file named beach", Resolution{Intent: IntentSearchFilename, Param: "beach"}},
		{"General search", "search for cats", Resolution{Intent: IntentGeneralSearch, Param: "cats"}},
		{"Stop phrases are stripped literally", "findable images", Resolution{Intent: IntentGeneralSearch, Param: "able images"}},
		{"Empty search term falls through", "get", Resolution{Intent: IntentFallback, Param: "get"}},
		{"Help", "help", Resolution{Intent: IntentHelp}},
		{"Thanks", "thanks a lot", Resolution{Intent: IntentThanks}},
		{"Goodbye", "bye", Resolution{Intent: IntentGoodbye}},
		{"Fallback keeps original text", "  Xyzzy nonsense query ", Resolution{Intent: IntentFallback, Param: "  Xyzzy nonsense query "}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.message))
		})
	}
}

func TestResolve_IsDeterministic(t *testing.T) {
	for _, msg := range []string{"find my vacation folder", "recent documents", "xyzzy", "named report"} {
		assert.Equal(t, Resolve(msg), Resolve(msg), msg)
	}
}

func TestSearchTerm(t *testing.T) {
	assert.Equal(t, "cats", SearchTerm("show me pictures of cats"))
	assert.Equal(t, "sunsets", SearchTerm("look for images about sunsets"))
	assert.Equal(t, "", SearchTerm("fetch"))
}
