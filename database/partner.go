package database

type Partner struct {
	Model
	ListId       uint   `json:"-" gorm:"index"`
	List         List   `json:"-" gorm:"foreignKey:ListId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	Website      string `json:"website"`
	Tier         string `json:"tier"`
}

type Sponsor struct {
	Model
	ListId       uint    `json:"-" gorm:"index"`
	List         List    `json:"-" gorm:"foreignKey:ListId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	ContactEmail string  `json:"contact_email"`
	Status       string  `json:"status"`
}

type Supplier struct {
	Model
	ListId       uint   `json:"-" gorm:"index"`
	List         List   `json:"-" gorm:"foreignKey:ListId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
	Category     string `json:"category"`
}
