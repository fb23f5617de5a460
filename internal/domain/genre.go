package domain

type Genre string

const (
	GenreAction      Genre = "Action"
	GenreAdventure   Genre = "Adventure"
	GenreAnimation   Genre = "Animation"
	GenreComedy      Genre = "Comedy"
	GenreCrime       Genre = "Crime"
	GenreDocumentary Genre = "Documentary"
	GenreDrama       Genre = "Drama"
	GenreFamily      Genre = "Family"
	GenreFantasy     Genre = "Fantasy"
	GenreHistory     Genre = "History"
	GenreHorror      Genre = "Horror"
	GenreMusic       Genre = "Music"
	GenreMystery     Genre = "Mystery"
	GenreRomance     Genre = "Romance"
	GenreSciFi       Genre = "Sci-Fi"
	GenreThriller    Genre = "Thriller"
	GenreWar         Genre = "War"
	GenreWestern     Genre = "Western"
)

// Genres lists every supported genre in alphabetical order.
var Genres = []Genre{
	GenreAction,
	GenreAdventure,
	GenreAnimation,
	GenreComedy,
	GenreCrime,
	GenreDocumentary,
	GenreDrama,
	GenreFamily,
	GenreFantasy,
	GenreHistory,
	GenreHorror,
	GenreMusic,
	GenreMystery,
	GenreRomance,
	GenreSciFi,
	GenreThriller,
	GenreWar,
	GenreWestern,
}

var knownGenres = func() map[Genre]struct{} {
	m := make(map[Genre]struct{}, len(Genres))
	for _, g := range Genres {
		m[g] = struct{}{}
	}
	return m
}()

func (g Genre) Valid() bool {
	_, ok := knownGenres[g]
	return ok
}

func (g Genre) String() string {
	return string(g)
}

func ToGenres(values []string) []Genre {
	genres := make([]Genre, len(values))
	for i, v := range values {
		genres[i] = Genre(v)
	}

	return genres
}

func GenreStrings(genres []Genre) []string {
	values := make([]string, len(genres))
	for i, g := range genres {
		values[i] = string(g)
	}

	return values
}
