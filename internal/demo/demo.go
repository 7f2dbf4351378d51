// Package demo runs the scripted walk through the note store that the
// CLI prints on startup.
package demo

import (
	"fmt"
	"io"

	"example.com/notes-store/internal/notes"
)

// Run adds three notes, deletes the third, lists the rest, updates the
// second and reads it back, printing each step to w.
func Run(w io.Writer, s *notes.Store) error {
	first := notes.Note{Title: "Task 14", Content: "Spring Boot - Core."}
	second := notes.Note{Title: "Task 15", Content: "Spring Boot - MVC."}
	third := notes.Note{Title: "Task 16", Content: "Spring Boot - Data."}

	fmt.Fprintln(w)
	first = s.Add(first)
	fmt.Fprintf(w, "Added note: %s\n", first)
	second = s.Add(second)
	fmt.Fprintf(w, "Added note: %s\n", second)
	third = s.Add(third)
	fmt.Fprintf(w, "Added note: %s\n", third)
	fmt.Fprintln(w)

	if err := s.DeleteByID(third.ID); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	fmt.Fprintf(w, "All notes after deleting the note by id = %d:\n", third.ID)
	for _, n := range s.ListAll() {
		fmt.Fprintln(w, n)
	}
	fmt.Fprintln(w)

	second.Title = "Task 12"
	second.Content = "ORM. Hibernate."
	if err := s.Update(second); err != nil {
		return fmt.Errorf("update: %w", err)
	}

	got, err := s.GetByID(second.ID)
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}
	fmt.Fprintf(w, "Note by id = %d after updating: %s\n", second.ID, got)
	return nil
}
