package models

type TeamMember struct {
	ID   string `json:"id" bson:"id" db:"id" validate:"required,max=64"`
	Name string `json:"name" bson:"name" db:"name" validate:"max=120"`
	Role string `json:"role" bson:"role" db:"role" validate:"max=120"`
	Img  string `json:"img" bson:"img" db:"img" validate:"max=2048"`
}
