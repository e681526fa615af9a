package models

import "time"

// BaseModel - общие поля сущностей. ID строковый: сид-данные используют "1".."4",
// новые записи получают id из времени в миллисекундах.
type BaseModel struct {
	ID        string    `json:"id" gorm:"type:varchar(32);primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime:false;not null"`
}
