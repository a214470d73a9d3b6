package models

import "time"

// Book reprezentuje książkę na półce użytkownika
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BookInput to pola, które klient może ustawić przy dodawaniu i edycji
type BookInput struct {
	Name      string `json:"name" yaml:"name"`
	Year      int    `json:"year" yaml:"year"`
	Author    string `json:"author" yaml:"author"`
	Summary   string `json:"summary" yaml:"summary"`
	Publisher string `json:"publisher" yaml:"publisher"`
	PageCount int    `json:"pageCount" yaml:"pageCount"`
	ReadPage  int    `json:"readPage" yaml:"readPage"`
	Reading   bool   `json:"reading" yaml:"reading"`
}

// BookSummary to skrócona postać książki zwracana na liście
type BookSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// IsFinished sprawdza czy książka została przeczytana do końca
func (in BookInput) IsFinished() bool {
	return in.PageCount == in.ReadPage
}

// Apply nadpisuje modyfikowalne pola książki i przelicza Finished
func (b *Book) Apply(in BookInput) {
	b.Name = in.Name
	b.Year = in.Year
	b.Author = in.Author
	b.Summary = in.Summary
	b.Publisher = in.Publisher
	b.PageCount = in.PageCount
	b.ReadPage = in.ReadPage
	b.Reading = in.Reading
	b.Finished = in.IsFinished()
}

// Summarize zwraca skróconą postać książki
func (b *Book) Summarize() BookSummary {
	return BookSummary{
		ID:        b.ID,
		Name:      b.Name,
		Publisher: b.Publisher,
	}
}
