package constants

// Categoria is an expense category label as it appears in the output record.
type Categoria string

const (
	Alimentacion    Categoria = "alimentación"
	Transporte      Categoria = "transporte"
	Servicios       Categoria = "servicios"
	Entretenimiento Categoria = "entretenimiento"
	Educacion       Categoria = "educación"
	Salud           Categoria = "salud"
	Vivienda        Categoria = "vivienda"
	Tecnologia      Categoria = "tecnología"
	Otros           Categoria = "otros"
)

// CategoriaVocab pairs a category with the keywords that select it.
type CategoriaVocab struct {
	Name     Categoria
	Keywords []string
}

// categoriaVocab is ordered by classification priority; the first category
// with any keyword present wins. "otros" carries no keywords and is only
// offered to the model path as a catch-all.
var categoriaVocab = []CategoriaVocab{
	{Alimentacion, []string{"rest", "pollo", "pizza", "sandwich", "bembos", "kfc", "comida", "market", "super"}},
	{Transporte, []string{"uber", "taxi", "bus", "peaje", "gasolina", "shell", "grif"}},
	{Servicios, []string{"luz", "agua", "internet", "claro", "movistar", "servicio"}},
	{Entretenimiento, []string{"cine", "netflix", "spotify", "pub", "bar"}},
	{Educacion, []string{"colegio", "universidad", "curso", "libro"}},
	{Salud, []string{"farmacia", "clinica", "salud", "medic"}},
	{Vivienda, []string{"alquiler", "inmobiliaria", "hogar", "vivienda"}},
	{Tecnologia, []string{"laptop", "pc", "celular", "iphone", "samsung", "tecnolog"}},
}

// Categorias returns the keyword vocabulary in priority order.
func Categorias() []CategoriaVocab {
	return categoriaVocab
}

// BaseCategorias lists every known category label, including the model-only
// catch-all, for prompt construction.
func BaseCategorias() []string {
	out := make([]string, 0, len(categoriaVocab)+1)
	for _, c := range categoriaVocab {
		out = append(out, string(c.Name))
	}
	return append(out, string(Otros))
}
