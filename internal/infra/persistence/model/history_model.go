package model

import "time"

// HistoryMasterModel mirrors the 't_pf_history' table.
type HistoryMasterModel struct {
	ID           int64              `gorm:"column:pk;primaryKey;autoIncrement"`
	EntityName   string             `gorm:"column:entity_name;type:varchar(255);not null;index:idx_history_entity"`
	EntityID     int64              `gorm:"column:entity_id;not null;index:idx_history_entity"`
	EntityOpType string             `gorm:"column:entity_optype;type:varchar(32)"`
	ModifiedBy   string             `gorm:"column:modifiedby;type:varchar(60);index"`
	ModifiedAt   time.Time          `gorm:"column:modifiedat;index"`
	Attributes   []HistoryAttrModel `gorm:"foreignKey:MasterID"`
}

// TableName explicitly sets the table name for GORM.
func (HistoryMasterModel) TableName() string {
	return "t_pf_history"
}

// HistoryAttrModel mirrors the 't_pf_history_attr' table.
type HistoryAttrModel struct {
	ID                int64   `gorm:"column:pk;primaryKey;autoIncrement"`
	MasterID          int64   `gorm:"column:master_fk;not null;index"`
	PropertyName      string  `gorm:"column:property_name;type:varchar(255)"`
	PropertyTypeClass string  `gorm:"column:property_type_class;type:varchar(128)"`
	Value             *string `gorm:"column:value;type:text"`
	OldValue          *string `gorm:"column:old_value;type:text"`
	OpType            string  `gorm:"column:optype;type:varchar(32)"`
}

// TableName explicitly sets the table name for GORM.
func (HistoryAttrModel) TableName() string {
	return "t_pf_history_attr"
}

// All lists every model for AutoMigrate and code generation.
func All() []any {
	return []any{
		&UserModel{}, &GroupModel{}, &GroupUserModel{}, &UserPrefModel{},
		&CustomerModel{}, &OrderModel{}, &OrderPositionModel{},
		&InvoiceModel{}, &InvoicePositionModel{},
		&HistoryMasterModel{}, &HistoryAttrModel{},
	}
}
