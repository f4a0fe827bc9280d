package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	tests := []struct {
		name       string
		ticketID   uint
		authorID   uint
		content    string
		isInternal bool
		wantErr    string
	}{
		{"valid public comment", 1, 2, "Thanks, looking into it", false, ""},
		{"valid internal note", 1, 2, "Customer called twice already", true, ""},
		{"boundary content length", 1, 2, strings.Repeat("c", maxCommentLength), false, ""},
		{"missing ticket", 0, 2, "content", false, "ticket ID"},
		{"missing author", 1, 0, "content", false, "author ID"},
		{"empty content", 1, 2, "", false, "content"},
		{"whitespace only", 1, 2, "   ", false, "content"},
		{"content too long", 1, 2, strings.Repeat("c", maxCommentLength+1), false, "content"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewComment(tc.ticketID, tc.authorID, tc.content, tc.isInternal)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
			assert.Equal(t, tc.ticketID, c.TicketID())
			assert.Equal(t, tc.authorID, c.AuthorID())
			assert.Equal(t, tc.content, c.Content())
			assert.Equal(t, tc.isInternal, c.IsInternal())
			assert.False(t, c.CreatedAt().IsZero())
		})
	}
}

func TestIsAllowedFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"report.pdf", true},
		{"screenshot.PNG", true},
		{"notes.txt", true},
		{"sheet.xlsx", true},
		{"photo.jpeg", true},
		{"malware.exe", false},
		{"script.sh", false},
		{"archive.tar.gz", false},
		{"noextension", false},
		{"", false},
		{".gitignore", false},
	}

	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			assert.Equal(t, tc.want, IsAllowedFilename(tc.filename))
		})
	}
}

func TestVoteSwitch(t *testing.T) {
	v, err := NewVote(1, 2, "up")
	require.NoError(t, err)

	v.Switch()
	assert.Equal(t, "down", string(v.Type()))
	v.Switch()
	assert.Equal(t, "up", string(v.Type()))
}
