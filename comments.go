package news2pdf

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Comment is one node of the reconstructed reply tree. A nil ParentID
// marks a root comment. Replies preserve the server-supplied order and
// nesting depth exactly.
type Comment struct {
	ID        string
	Author    string
	Content   string
	CreatedAt time.Time
	Likes     int
	ParentID  *string
	Replies   []Comment
}

// CommentsPage is one page of the comment listing endpoint. Records stay
// raw until ParseComment runs so that a malformed record fails exactly
// where it is consumed.
type CommentsPage struct {
	Comments []json.RawMessage `json:"comments"`
}

// Parse converts every record of the page into a Comment, preserving
// order. The first malformed record aborts the whole parse.
func (p *CommentsPage) Parse() ([]Comment, error) {
	comments := make([]Comment, 0, len(p.Comments))
	for i, raw := range p.Comments {
		c, err := ParseComment(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// decodeCommentsPage decodes the endpoint's JSON envelope.
func decodeCommentsPage(data []byte) (*CommentsPage, error) {
	var page CommentsPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("%w: decoding comments page: %v", ErrCommentParse, err)
	}
	return &page, nil
}

// requiredCommentFields must all be present on every record. A record
// missing any of them is rejected whole; no partial comment is produced.
var requiredCommentFields = []string{
	"commentId", "userName", "content", "createdAt", "likes", "parentId",
}

// ParseComment converts one raw record into a Comment, recursing into its
// replies array. parentId must be present but may be JSON null (a root
// comment). Returns ErrCommentParse on any missing or mistyped field.
func ParseComment(raw json.RawMessage) (Comment, error) {
	var record map[string]json.RawMessage
	if err := json.Unmarshal(raw, &record); err != nil {
		return Comment{}, fmt.Errorf("%w: %v", ErrCommentParse, err)
	}

	for _, field := range requiredCommentFields {
		if _, ok := record[field]; !ok {
			return Comment{}, fmt.Errorf("%w: missing field %q", ErrCommentParse, field)
		}
	}

	var c Comment
	if err := unmarshalField(record, "commentId", &c.ID); err != nil {
		return Comment{}, err
	}
	if err := unmarshalField(record, "userName", &c.Author); err != nil {
		return Comment{}, err
	}
	if err := unmarshalField(record, "content", &c.Content); err != nil {
		return Comment{}, err
	}
	if err := unmarshalField(record, "likes", &c.Likes); err != nil {
		return Comment{}, err
	}
	if err := unmarshalField(record, "parentId", &c.ParentID); err != nil {
		return Comment{}, err
	}

	var createdAt string
	if err := unmarshalField(record, "createdAt", &createdAt); err != nil {
		return Comment{}, err
	}
	ts, err := parseCommentTime(createdAt)
	if err != nil {
		return Comment{}, err
	}
	c.CreatedAt = ts

	if rawReplies, ok := record["replies"]; ok {
		var replies []json.RawMessage
		if err := json.Unmarshal(rawReplies, &replies); err != nil {
			return Comment{}, fmt.Errorf("%w: field \"replies\": %v", ErrCommentParse, err)
		}
		c.Replies = make([]Comment, 0, len(replies))
		for _, rawReply := range replies {
			reply, err := ParseComment(rawReply)
			if err != nil {
				return Comment{}, err
			}
			c.Replies = append(c.Replies, reply)
		}
	}

	return c, nil
}

// unmarshalField decodes one record field into dst with a typed error.
func unmarshalField(record map[string]json.RawMessage, field string, dst any) error {
	if err := json.Unmarshal(record[field], dst); err != nil {
		return fmt.Errorf("%w: field %q: %v", ErrCommentParse, field, err)
	}
	return nil
}

// parseCommentTime interprets the endpoint's ISO-8601 timestamps. A
// literal "Z" UTC suffix is normalized to an explicit +00:00 offset first.
func parseCommentTime(value string) (time.Time, error) {
	normalized := strings.Replace(value, "Z", "+00:00", 1)
	ts, err := time.Parse(time.RFC3339, normalized)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: field \"createdAt\": %v", ErrCommentParse, err)
	}
	return ts, nil
}
