package database

const (
	ExpenseStatusPending  = "PENDING"
	ExpenseStatusApproved = "APPROVED"
	ExpenseStatusRejected = "REJECTED"
	ExpenseStatusPaid     = "PAID"
)

type Expense struct {
	Model
	ListId        uint      `json:"-" gorm:"index"`
	List          List      `json:"-" gorm:"foreignKey:ListId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	PoleId        *uint     `json:"-" gorm:"index"`
	Pole          *Pole     `json:"pole,omitempty" gorm:"foreignKey:PoleId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status" gorm:"default:'PENDING'"`
	SubmittedById uint      `json:"-" gorm:"index"`
	SubmittedBy   User      `json:"submitted_by" gorm:"foreignKey:SubmittedById;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	SupplierId    *uint     `json:"-" gorm:"index"`
	Supplier      *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	DocumentId    *uint     `json:"-" gorm:"index"`
	Document      *Document `json:"receipt,omitempty" gorm:"foreignKey:DocumentId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
}

type ExpenseComment struct {
	Model
	ExpenseId uint    `json:"-" gorm:"index"`
	Expense   Expense `json:"-" gorm:"foreignKey:ExpenseId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	AuthorId  uint    `json:"-" gorm:"index"`
	Author    User    `json:"author" gorm:"foreignKey:AuthorId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	Body      string  `json:"body"`
}
