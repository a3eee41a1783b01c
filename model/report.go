package model

type Report struct {
	Attempted []string
	Succeeded []string
	Failed    []string
}
