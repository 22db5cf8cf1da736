package model

// Package represents a document in the packages collection
type Package struct {
	ID    int64  `bson:"_id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Price int    `bson:"price" json:"price"`
}
