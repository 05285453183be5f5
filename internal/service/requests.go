package service

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// NumberInput accepts a form value as either a JSON string or a JSON number
type NumberInput string

func (n *NumberInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumberInput(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = NumberInput(num.String())
	return nil
}

func (n NumberInput) String() string {
	return strings.TrimSpace(string(n))
}

// CreateProductRequest is the add-product form. Numbers arrive unparsed and are coerced after validation.
type CreateProductRequest struct {
	Name  string      `json:"name" form:"name" validate:"required,min=2,max=100"`
	Stock NumberInput `json:"stock" form:"stock" validate:"required,int_gte0"`
	Cost  NumberInput `json:"cost" form:"cost" validate:"required,decimal_gte0"`
	Price NumberInput `json:"price" form:"price" validate:"required,decimal_gte0"`
	Photo string      `json:"photo" form:"-" validate:"omitempty,datauri"`
}

// SaleRequest records units sold; a missing or non-positive unit price falls back to the product price
type SaleRequest struct {
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}
