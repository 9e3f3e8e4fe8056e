package v1

// User 用户记录，ID 由存储层分配。
type User struct {
	ID   uint64 `json:"id"   gorm:"column:id;primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:name;not null"`
}

// TableName 映射到 users 表。
func (User) TableName() string {
	return "users"
}
