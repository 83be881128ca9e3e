package models

// DBCredential stores connection parameters for an external database, owned by
// one user. The password is kept as given because it is replayed verbatim when
// opening outbound introspection connections.
type DBCredential struct {
	BaseModel
	UserID         string `gorm:"column:user_id;index" json:"user_id"`
	DatabaseEngine string `gorm:"column:database_engine" json:"database_engine"`
	DatabaseName   string `gorm:"column:database_name" json:"database_name"`
	Host           string `gorm:"column:host" json:"host"`
	DBUser         string `gorm:"column:db_user" json:"db_user"`
	Port           int    `gorm:"column:port" json:"port"`
	Password       string `gorm:"column:password" json:"password"`
}

// TableName specifies the static table name for GORM.
func (DBCredential) TableName() string {
	return "db_credentials"
}
