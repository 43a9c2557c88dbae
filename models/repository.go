package models

type Repository struct {
	Name     string
	FullName string
	Private  bool
	Archived bool
}
