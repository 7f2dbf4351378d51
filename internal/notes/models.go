package notes

import "fmt"

type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (n Note) String() string {
	return fmt.Sprintf("Note{id=%d, title='%s', content='%s'}", n.ID, n.Title, n.Content)
}

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
