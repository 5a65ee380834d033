package models

import (
	"time"
)

// Article 文章表
type Article struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                          // 主键
	Title         string    `gorm:"type:varchar(200);not null" json:"title"`                       // 标题
	Summary       string    `gorm:"type:text" json:"summary"`                                      // 摘要
	Content       string    `gorm:"type:text;not null" json:"content"`                             // 正文（markdown/html）
	CoverImage    string    `gorm:"type:varchar(500)" json:"cover_image"`                          // 封面图地址（透传存储）
	CategoryID    *uint     `gorm:"index" json:"category_id"`                                      // 分类外键，可为空
	IsPublic      bool      `gorm:"default:true;index" json:"is_public"`                           // 是否公开
	IsTop         bool      `gorm:"default:false;index" json:"is_top"`                             // 是否置顶
	IsRecommended bool      `gorm:"default:false" json:"is_recommended"`                           // 是否推荐
	Status        string    `gorm:"type:varchar(20);default:'draft';index;not null" json:"status"` // 状态（draft/published）
	ViewCount     int64     `gorm:"default:0;not null" json:"view_count"`                          // 阅读量
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                                       // 创建时间
	UpdatedAt     time.Time `json:"updated_at"`                                                    // 更新时间

	Category *Category `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"` // 所属分类
	Tags     []Tag     `gorm:"many2many:article_tags" json:"tags"`                     // 关联标签
}

// TableName 指定表名
func (Article) TableName() string {
	return "articles"
}

// ArticleTag 文章-标签关联表
type ArticleTag struct {
	ArticleID uint `gorm:"primaryKey;uniqueIndex:idx_article_tag" json:"article_id"` // 文章外键
	TagID     uint `gorm:"primaryKey;uniqueIndex:idx_article_tag" json:"tag_id"`     // 标签外键
}

// TableName 指定表名
func (ArticleTag) TableName() string {
	return "article_tags"
}
