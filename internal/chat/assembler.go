package chat

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"imagevault/internal/contentapi"
	"imagevault/internal/media"
	"imagevault/internal/model"
)

// RecentLimit is how many items a Recent request returns.
const RecentLimit = 5

const (
	greetingText = `Hello! I'm your Image Assistant. I can help you find images and PDFs. Try asking me:
• Show all images
• Find images about [topic]
• Show PDFs
• List folders
• Search for [name]`

	helpText = `Here's what I can do:

📁 Folders:
• "Show all folders" - List all folders
• "Show folder [name]" - View specific folder

🖼️ Images:
• "Show all images" - Display all images
• "Find [keyword]" - Search images
• "Recent images" - Show latest images
• "Images with description [keyword]"

📄 PDFs:
• "Show PDFs" - Display all PDFs
• "Recent PDFs" - Show latest PDFs

🔍 Search:
• "Search for [keyword]" - Search everything
• "Named [filename]" - Find by filename
• "Description contains [keyword]" - Find by description

📊 Statistics:
• "How many" - Show collection stats
• "Count" - Show totals

Just ask me naturally and I'll help you find what you need!`

	thanksText  = "You're welcome! Feel free to ask me anything else!"
	goodbyeText = "Goodbye! Come back anytime you need help with your images and PDFs!"

	noMatchText = `I'm not sure what you're looking for. Try:
• "Show all images"
• "Show folders"
• "Find [keyword]"
• "Recent images"
• "Help" for more options`
)

// Assembler turns a Resolution into a Reply, reading whatever it needs from
// the content service with the caller's API key.
type Assembler struct {
	content contentapi.Client
}

func NewAssembler(content contentapi.Client) *Assembler {
	return &Assembler{content: content}
}

// Assemble builds the reply for res. It never fails: misses and content
// service outages both come back as text replies.
func (a *Assembler) Assemble(ctx context.Context, apiKey string, res Resolution) model.Reply {
	switch res.Intent {
	case IntentGreeting:
		return model.TextReply(greetingText)
	case IntentListFolders:
		return a.listFolders(ctx, apiKey)
	case IntentShowFolder:
		return a.showFolder(ctx, apiKey, res.Param)
	case IntentListImages:
		images := a.content.AllImages(ctx, apiKey)
		if len(images) == 0 {
			return model.TextReply("No images found in your collection.")
		}
		return model.ImagesReply(fmt.Sprintf("🖼️ I found %d images in your collection:", len(images)), images)
	case IntentListPDFs:
		pdfs := a.content.AllPDFs(ctx, apiKey)
		if len(pdfs) == 0 {
			return model.TextReply("No PDFs found in your collection.")
		}
		return model.PDFsReply(fmt.Sprintf("📄 I found %d PDF documents:", len(pdfs)), pdfs)
	case IntentCount:
		return a.count(ctx, apiKey)
	case IntentRecent:
		return a.recent(ctx, apiKey, res.RecentKind)
	case IntentSearchDescription:
		matches := filterItems(a.content.AllImages(ctx, apiKey), res.Param, func(f model.FileItem) string { return f.Description })
		if len(matches) == 0 {
			return model.TextReply(fmt.Sprintf("No images found with description containing '%s'.", res.Param))
		}
		return model.ImagesReply(fmt.Sprintf("🔍 Found %d images with description containing '%s':", len(matches), res.Param), matches)
	case IntentSearchFilename:
		matches := filterItems(a.content.AllImages(ctx, apiKey), res.Param, func(f model.FileItem) string { return f.Filename })
		if len(matches) == 0 {
			return model.TextReply(fmt.Sprintf("No images found with filename containing '%s'.", res.Param))
		}
		return model.ImagesReply(fmt.Sprintf("🔍 Found %d images with filename containing '%s':", len(matches), res.Param), matches)
	case IntentGeneralSearch:
		results := a.content.Search(ctx, apiKey, res.Param)
		if len(results) == 0 {
			return model.TextReply(fmt.Sprintf("Sorry, I couldn't find any images matching '%s'. Try a different search term!", res.Param))
		}
		return model.ImagesReply(fmt.Sprintf("🔍 I found %d results for '%s':", len(results), res.Param), results)
	case IntentHelp:
		return model.TextReply(helpText)
	case IntentThanks:
		return model.TextReply(thanksText)
	case IntentGoodbye:
		return model.TextReply(goodbyeText)
	case IntentFallback:
		results := a.content.Search(ctx, apiKey, res.Param)
		if len(results) == 0 {
			return model.TextReply(noMatchText)
		}
		return model.ImagesReply(fmt.Sprintf("🔍 I found %d results for your query:", len(results)), results)
	default:
		return model.TextReply(noMatchText)
	}
}

func (a *Assembler) listFolders(ctx context.Context, apiKey string) model.Reply {
	folders := a.content.ListFolders(ctx, apiKey)
	if len(folders) == 0 {
		return model.TextReply("No folders found in your collection.")
	}

	lines := make([]string, len(folders))
	for i, f := range folders {
		lines[i] = fmt.Sprintf("📁 %s (%d files)", f.Name, f.FileCount)
	}
	return model.TextReply(fmt.Sprintf(
		"You have %d folders:\n\n%s\n\nTo view a folder's contents, ask 'Show folder [name]'",
		len(folders), strings.Join(lines, "\n"),
	))
}

func (a *Assembler) showFolder(ctx context.Context, apiKey, name string) model.Reply {
	if name != "" {
		for _, folder := range a.content.ListFolders(ctx, apiKey) {
			if !strings.EqualFold(folder.Name, name) {
				continue
			}
			detail, ok := a.content.GetFolder(ctx, apiKey, folder.ID)
			if !ok {
				break
			}
			images, pdfs := SplitByType(detail.Files)
			annotate(images, folder)
			annotate(pdfs, folder)
			return model.MixedReply(fmt.Sprintf("📁 %s contains %d files:", folder.Name, len(detail.Files)), images, pdfs)
		}
	}
	return model.TextReply(fmt.Sprintf(
		"Sorry, I couldn't find a folder named '%s'. Use 'show folders' to see all available folders.", name,
	))
}

func (a *Assembler) count(ctx context.Context, apiKey string) model.Reply {
	images := len(a.content.AllImages(ctx, apiKey))
	pdfs := len(a.content.AllPDFs(ctx, apiKey))
	folders := len(a.content.ListFolders(ctx, apiKey))

	return model.TextReply(fmt.Sprintf(
		"📊 Your Collection Summary:\n📁 Folders: %d\n🖼️ Images: %d\n📄 PDFs: %d\n📦 Total Files: %d",
		folders, images, pdfs, images+pdfs,
	))
}

func (a *Assembler) recent(ctx context.Context, apiKey string, kind RecentKind) model.Reply {
	if kind == RecentPDFs {
		if items := RecentItems(a.content.AllPDFs(ctx, apiKey), RecentLimit); len(items) > 0 {
			return model.PDFsReply(fmt.Sprintf("📄 Here are your %d most recent PDFs:", len(items)), items)
		}
	} else {
		if items := RecentItems(a.content.AllImages(ctx, apiKey), RecentLimit); len(items) > 0 {
			return model.ImagesReply(fmt.Sprintf("🖼️ Here are your %d most recent images:", len(items)), items)
		}
	}
	return model.TextReply("No recent items found.")
}

// RecentItems returns up to limit items, newest first by upload time. The
// timestamps are ISO-8601 so they compare as strings. Items with equal
// timestamps keep their input order. items is not modified.
func RecentItems(items []model.FileItem, limit int) []model.FileItem {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b model.FileItem) int {
		return strings.Compare(b.UploadTime(), a.UploadTime())
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// SplitByType partitions files into images and PDFs. Other types are dropped.
func SplitByType(files []model.FileItem) (images, pdfs []model.FileItem) {
	images, pdfs = []model.FileItem{}, []model.FileItem{}
	for _, f := range files {
		switch {
		case media.IsImage(f.FileType):
			images = append(images, f)
		case media.IsPDF(f.FileType):
			pdfs = append(pdfs, f)
		}
	}
	return images, pdfs
}

func annotate(items []model.FileItem, folder model.FolderSummary) {
	for i := range items {
		items[i].FolderName = folder.Name
		items[i].FolderID = folder.ID
	}
}

func filterItems(items []model.FileItem, keyword string, field func(model.FileItem) string) []model.FileItem {
	keyword = strings.ToLower(keyword)
	out := []model.FileItem{}
	for _, item := range items {
		if strings.Contains(strings.ToLower(field(item)), keyword) {
			out = append(out, item)
		}
	}
	return out
}
