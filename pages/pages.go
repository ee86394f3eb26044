package pages

// Page identifies one of the client's views by its path.
type Page string

const (
	Login      Page = "/login"
	Register   Page = "/register"
	Dashboard  Page = "/"
	Statistics Page = "/statistics"
)

func (p Page) String() string {
	return string(p)
}

// Navigator moves the user to another page.
type Navigator interface {
	Navigate(page Page)
}
