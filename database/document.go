package database

type Document struct {
	Model
	ListId      uint   `json:"-" gorm:"index"`
	List        List   `json:"-" gorm:"foreignKey:ListId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	FileID      string `json:"file_id" gorm:"unique"`
	FileName    string `json:"file_name"`
	Size        int64  `json:"size"`
	MIMEType    string `json:"mime_type"`
	StoragePath string `json:"-"`
	OwnerID     uint   `json:"-" gorm:"index"`
	Owner       User   `json:"owner" gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
}
