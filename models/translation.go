package models

import (
	"time"
)

// Translation 翻译记录, 只在外部翻译成功之后创建, 之后不再修改
type Translation struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	SourceLanguage string    `json:"source_language" gorm:"type:text;not null"` // 源语言
	TargetLanguage string    `json:"target_language" gorm:"type:text;not null"` // 目标语言
	SourceText     string    `json:"source_text" gorm:"type:text;not null"`   // 原文
	TargetText     string    `json:"target_text" gorm:"type:text"`            // 译文
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Translation) TableName() string {
	return "translations"
}

// TranslationInput 创建翻译的请求体-前端所给的数据
type TranslationInput struct {
	SourceLanguage string `json:"source_language" binding:"required" example:"en"`
	TargetLanguage string `json:"target_language" binding:"required" example:"fr"`
	SourceText     string `json:"source_text" binding:"required" example:"hello"`
}

const requiredFieldsMessage = "source_language, target_language, and source_text are required."

// ValidationError 请求缺少必填字段
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError 绑定失败(字段缺失、为空或类型不对)统一返回同一条提示
func NewValidationError(err error) *ValidationError {
	return &ValidationError{Message: requiredFieldsMessage, Err: err}
}
