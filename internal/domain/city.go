package domain

// City links a search-form slug to the exact name used in the catalog.
type City struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Cities is the fixed set of supported cities, in form order.
var Cities = []City{
	{Slug: "cartagena", Name: "Cartagena"},
	{Slug: "medellin", Name: "Medellín"},
	{Slug: "bogota", Name: "Bogotá"},
	{Slug: "cali", Name: "Cali"},
	{Slug: "barranquilla", Name: "Barranquilla"},
	{Slug: "santa-marta", Name: "Santa Marta"},
	{Slug: "manizales", Name: "Manizales"},
	{Slug: "pereira", Name: "Pereira"},
	{Slug: "bucaramanga", Name: "Bucaramanga"},
	{Slug: "pasto", Name: "Pasto"},
	{Slug: "villavicencio", Name: "Villavicencio"},
	{Slug: "ibague", Name: "Ibagué"},
	{Slug: "armenia", Name: "Armenia"},
	{Slug: "valledupar", Name: "Valledupar"},
}

// ResolveCity maps a slug to the catalog city name. Property rows store
// the accented name, so matching goes through this table.
func ResolveCity(slug string) (string, bool) {
	for _, c := range Cities {
		if c.Slug == slug {
			return c.Name, true
		}
	}
	return "", false
}
