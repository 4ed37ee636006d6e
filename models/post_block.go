package models

import (
	"encoding/json"
	"fmt"
)

// PostBlockKind is the discriminator of a post body block.
type PostBlockKind string

const (
	PostBlockKindText  PostBlockKind = "text"
	PostBlockKindImage PostBlockKind = "image"
	PostBlockKindEmbed PostBlockKind = "embed"
)

// PostBlock is one region of a post body.
//
//sumtype:decl
type PostBlock interface {
	Kind() PostBlockKind
	isPostBlock()
}

// TextBlock is an HTML text region.
type TextBlock struct {
	Text string `json:"data"`
}

// ImageBlock is an inline image.
type ImageBlock struct {
	Image ImageVersion `json:"data"`
	Links struct {
		Assets []ID `json:"assets,omitempty"`
	} `json:"links"`
}

// EmbedBlock is embedded third-party media.
type EmbedBlock struct {
	Data EmbedData `json:"data"`
}

// EmbedData describes an embedded resource.
type EmbedData struct {
	URL string `json:"url"`
}

func (TextBlock) Kind() PostBlockKind  { return PostBlockKindText }
func (ImageBlock) Kind() PostBlockKind { return PostBlockKindImage }
func (EmbedBlock) Kind() PostBlockKind { return PostBlockKindEmbed }

func (TextBlock) isPostBlock()  {}
func (ImageBlock) isPostBlock() {}
func (EmbedBlock) isPostBlock() {}

// PostBlocks decodes a heterogeneous list of blocks keyed by their "kind"
// field. Blocks of unknown kinds are skipped.
type PostBlocks []PostBlock

// UnmarshalJSON implements json.Unmarshaler.
func (b *PostBlocks) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode post blocks: %w", err)
	}

	blocks := make(PostBlocks, 0, len(raw))
	for i, r := range raw {
		var head struct {
			Kind PostBlockKind `json:"kind"`
		}
		if err := json.Unmarshal(r, &head); err != nil {
			return fmt.Errorf("decode post block %d kind: %w", i, err)
		}

		var (
			block PostBlock
			err   error
		)
		switch head.Kind {
		case PostBlockKindText:
			var t TextBlock
			err = json.Unmarshal(r, &t)
			block = t
		case PostBlockKindImage:
			var im ImageBlock
			err = json.Unmarshal(r, &im)
			block = im
		case PostBlockKindEmbed:
			var e EmbedBlock
			err = json.Unmarshal(r, &e)
			block = e
		default:
			continue
		}
		if err != nil {
			return fmt.Errorf("decode %s post block %d: %w", head.Kind, i, err)
		}
		blocks = append(blocks, block)
	}

	*b = blocks
	return nil
}

// MarshalJSON writes each block together with its kind discriminator.
func (b PostBlocks) MarshalJSON() ([]byte, error) {
	out := make([]map[string]any, 0, len(b))
	for _, block := range b {
		entry := map[string]any{"kind": block.Kind()}
		switch v := block.(type) {
		case TextBlock:
			entry["data"] = v.Text
		case ImageBlock:
			entry["data"] = v.Image
			entry["links"] = v.Links
		case EmbedBlock:
			entry["data"] = v.Data
		}
		out = append(out, entry)
	}
	return json.Marshal(out)
}
