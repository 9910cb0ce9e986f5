// Package models holds the row types shared by repositories and the RPC
// layer.
package models

import "time"

// Category is a topic category. IsDel is the soft-delete flag: a deleted
// category stays in storage and is merely hidden from reader listings.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	IsDel bool   `json:"is_del"`
}

// Topic is one article.
type Topic struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	CategoryID int64     `json:"category_id"`
	Content    string    `json:"content"`
	Summary    string    `json:"summary"`
	Hit        int64     `json:"hit"`
	IsDel      bool      `json:"is_del"`
	Dateline   time.Time `json:"dateline"`
}

// Admin is an editor account. Password carries the bcrypt digest inside the
// repository layer only and is never serialized.
type Admin struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	IsDel    bool   `json:"is_del"`
}
