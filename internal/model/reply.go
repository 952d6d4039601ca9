package model

import "encoding/json"

type ReplyType string

const (
	ReplyText   ReplyType = "text"
	ReplyImages ReplyType = "images"
	ReplyPDFs   ReplyType = "pdfs"
	ReplyMixed  ReplyType = "mixed"
)

// Reply is the chat answer for one message. Build it with TextReply,
// ImagesReply, PDFsReply or MixedReply; only the fields of its Type are
// serialized.
type Reply struct {
	Type    ReplyType
	Message string
	Data    []FileItem
	Images  []FileItem
	PDFs    []FileItem
}

func TextReply(msg string) Reply {
	return Reply{Type: ReplyText, Message: msg}
}

func ImagesReply(msg string, items []FileItem) Reply {
	return Reply{Type: ReplyImages, Message: msg, Data: nonNil(items)}
}

func PDFsReply(msg string, items []FileItem) Reply {
	return Reply{Type: ReplyPDFs, Message: msg, Data: nonNil(items)}
}

func MixedReply(msg string, images, pdfs []FileItem) Reply {
	return Reply{Type: ReplyMixed, Message: msg, Images: nonNil(images), PDFs: nonNil(pdfs)}
}

func (r Reply) MarshalJSON() ([]byte, error) {
	switch r.Type {
	case ReplyImages, ReplyPDFs:
		return json.Marshal(struct {
			Type    ReplyType  `json:"type"`
			Message string     `json:"message"`
			Data    []FileItem `json:"data"`
		}{r.Type, r.Message, nonNil(r.Data)})
	case ReplyMixed:
		return json.Marshal(struct {
			Type    ReplyType  `json:"type"`
			Message string     `json:"message"`
			Images  []FileItem `json:"images"`
			PDFs    []FileItem `json:"pdfs"`
		}{r.Type, r.Message, nonNil(r.Images), nonNil(r.PDFs)})
	default:
		return json.Marshal(struct {
			Type    ReplyType `json:"type"`
			Message string    `json:"message"`
		}{ReplyText, r.Message})
	}
}

func (r *Reply) UnmarshalJSON(b []byte) error {
	var raw struct {
		Type    ReplyType  `json:"type"`
		Message string     `json:"message"`
		Data    []FileItem `json:"data"`
		Images  []FileItem `json:"images"`
		PDFs    []FileItem `json:"pdfs"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = Reply{Type: raw.Type, Message: raw.Message, Data: raw.Data, Images: raw.Images, PDFs: raw.PDFs}
	return nil
}

func nonNil(items []FileItem) []FileItem {
	if items == nil {
		return []FileItem{}
	}
	return items
}
