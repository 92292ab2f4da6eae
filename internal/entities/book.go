package entities

// Book is a single row of the books table.
type Book struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

func (Book) TableName() string {
	return "books"
}
