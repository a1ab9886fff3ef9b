package cli

import "time"

const productTemplate = `
=== Product Details ===

Name:     {{.Product.Name}}
ID:       {{.Product.ID}}
Vendor:   {{.Product.VendorName}}
{{- if .Product.SeriesName }}
Series:   {{.Product.SeriesName}}
{{- end}}
{{- if .Product.ProductCode }}
Code:     {{.Product.ProductCode}}
{{- end}}
Price:    {{price .Product.Price}}
In stock: {{.Product.ItemQuantity}}
{{- if .Logged }}
Favorite: {{if .Favorite}}yes{{else}}no{{end}}
{{- end}}
{{- if .Product.Description }}

{{.Product.Description}}
{{- end}}

--- Reviews ---
{{- if .ReviewErr }}
Failed to load reviews: {{.ReviewErr}}
{{- else if not .Reviews }}
No reviews yet.
{{- else }}
Average: {{printf "%.1f" .Average}} / 5 ({{len .Reviews}} reviews)
{{- range .Reviews }}

{{stars .Rating}}  {{.User.Username}}  {{date .CreatedAt}}
{{.Comment}}
ID: {{.ID}}
{{- end}}
{{- end}}
`

const profileTemplate = `
=== Profile ===

Name:      {{.FullName}}
Username:  {{.Username}}
Email:     {{.Email}}
ID:        {{.ID}}
{{- if .AvatarURL }}
Avatar:    {{.AvatarURL}}
{{- end}}
Favorites: {{.FavoritesCount}}
Reviews:   {{.ReviewsCount}}
{{- if not .CreatedAt.IsZero }}
Member since: {{date .CreatedAt}}
{{- end}}
`

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02")
}
