package v1

import (
	bb_uuid "github.com/HarshadSelokar/campus-budget-buddy-app/internal/uuid"
)

type URIID struct {
	ID bb_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URICategory struct {
	Category string `uri:"category" binding:"required" example:"food"` // Name of the category
}

type Pagination struct {
	Count  int  `json:"count" example:"25"`  // The amount of records returned in this response
	Total  int  `json:"total" example:"827"` // The total number of records matching the query
	Offset uint `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int  `json:"limit" example:"25"`  // The maximum number of records returned
}
