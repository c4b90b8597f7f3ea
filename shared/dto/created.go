package dto

// Created is the body of a successful create.
type Created struct {
	ID int64 `json:"id"`
}
