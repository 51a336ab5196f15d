package post

// Post پستی که از /users/{id}/posts خوانده می‌شود.
// Timestamp توسط سرویس ارزیابی ارسال نمی‌شود و هنگام دریافت مقداردهی می‌شود (میلی‌ثانیه).
type Post struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userid"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// Comment کامنت یک پست؛ فقط تعداد آن نگهداری می‌شود
type Comment struct {
	ID      int    `json:"id"`
	PostID  int    `json:"postid"`
	Content string `json:"content"`
}
