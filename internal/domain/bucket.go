package domain

// BucketItem is an entry on the couple's shared bucket list.
type BucketItem struct {
	ID        int64
	Title     string
	UserID    int64
	Completed bool
}
