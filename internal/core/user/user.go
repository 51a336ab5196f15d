package user

// Directory نگاشت شناسه کاربر به نام نمایشی، همان‌طور که از /users برمی‌گردد
type Directory map[string]string

// Clone یک کپی مستقل از دایرکتوری برمی‌گرداند
func (d Directory) Clone() Directory {
	out := make(Directory, len(d))
	for id, name := range d {
		out[id] = name
	}
	return out
}
