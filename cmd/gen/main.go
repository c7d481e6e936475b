package main

import (
	"projectforge/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.GroupModel{},
		model.GroupUserModel{},
		model.UserPrefModel{},
		model.CustomerModel{},
		model.OrderModel{},
		model.OrderPositionModel{},
		model.InvoiceModel{},
		model.InvoicePositionModel{},
		model.HistoryMasterModel{},
		model.HistoryAttrModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
