package models

import (
	"time"
)

// Tag 标签表
type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`                              // 主键
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"` // 名称，唯一
	CreatedAt time.Time `gorm:"index" json:"created_at"`                           // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                        // 更新时间

	Articles []Article `gorm:"many2many:article_tags" json:"-"` // 关联文章
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}
