package database

// List is the tenant scope: one BDE association's workspace. Most other
// entities carry a ListId and realtime rooms are named after the list UUID.
type List struct {
	Model
	Name        string `json:"name"`
	School      string `json:"school"`
	Description string `json:"description"`
}

type Pole struct {
	Model
	ListId      uint    `json:"-" gorm:"index"`
	List        List    `json:"-" gorm:"foreignKey:ListId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
}
