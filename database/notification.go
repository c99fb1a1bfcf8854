package database

type Notification struct {
	Model
	UserId  uint   `json:"-" gorm:"index"`
	User    User   `json:"-" gorm:"foreignKey:UserId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Read    bool   `json:"read" gorm:"default:false"`
	// optional reference to the entity the notification is about
	RelatedType string `json:"related_type,omitempty"`
	RelatedUUID string `json:"related_uuid,omitempty"`
}
