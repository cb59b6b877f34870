package models

// Teacher is a mentor. TotalProjects counts the submissions currently assigned.
type Teacher struct {
	TeacherID     uint   `json:"teacher_id" gorm:"primaryKey;column:teacher_id"`
	Name          string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Dept          string `json:"dept" gorm:"not null;size:50;index" validate:"required,min=1,max=50"`
	Email         string `json:"email" gorm:"uniqueIndex:idx_teachers_email;not null;size:255" validate:"required,email,max=255"`
	TotalProjects int    `json:"total_projects" gorm:"not null;default:0"`
	BaseModel
}

// TableName returns the table name for Teacher
func (Teacher) TableName() string {
	return "teachers"
}
