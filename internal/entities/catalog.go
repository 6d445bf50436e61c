package entities

type Country struct {
	Name   string
	Code   string
	Prefix string
	Flag   string
}

type Department struct {
	Name           string
	Municipalities []string
}
