package repository

import (
	"context"
	"errors"
	"time"

	"github.com/metinatakli/moviemate/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	moviesCollection   = "movies"
	countersCollection = "counters"
)

type mongoMovie struct {
	ID         int64     `bson:"_id"`
	Title      string    `bson:"title"`
	Overview   string    `bson:"overview"`
	Poster     string    `bson:"poster"`
	Backdrop   string    `bson:"backdrop"`
	Rating     float64   `bson:"rating"`
	Year       int       `bson:"year"`
	Genre      []string  `bson:"genre"`
	Duration   string    `bson:"duration"`
	Director   string    `bson:"director,omitempty"`
	Cast       []string  `bson:"cast"`
	Language   string    `bson:"language"`
	Country    string    `bson:"country"`
	Featured   bool      `bson:"featured"`
	Popularity float64   `bson:"popularity"`
	Tags       []string  `bson:"tags"`
	Trailer    string    `bson:"trailer"`
	IMDbID     string    `bson:"imdbId,omitempty"`
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
	Version    int       `bson:"version"`
}

type MongoMovieRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewMongoMovieRepository(db *mongo.Database) *MongoMovieRepository {
	return &MongoMovieRepository{
		db:   db,
		coll: db.Collection(moviesCollection),
	}
}

// EnsureIndexes creates the secondary indexes used by catalog filters.
func (r *MongoMovieRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "genre", Value: 1}}},
		{Keys: bson.D{{Key: "year", Value: -1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
		{Keys: bson.D{{Key: "featured", Value: 1}}},
	})

	return err
}

func (r *MongoMovieRepository) FetchAll(ctx context.Context, criteria domain.MovieCriteria) ([]*domain.Movie, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, mongoFilter(criteria), opts)
	if err != nil {
		return nil, err
	}

	var docs []mongoMovie
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	movies := make([]*domain.Movie, len(docs))
	for i := range docs {
		movies[i] = docs[i].toDomain()
	}

	return movies, nil
}

func (r *MongoMovieRepository) GetById(ctx context.Context, id int64) (*domain.Movie, error) {
	var doc mongoMovie

	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *MongoMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	movie.ID = id
	movie.CreatedAt = now
	movie.UpdatedAt = now
	movie.Version = 1

	_, err = r.coll.InsertOne(ctx, fromDomain(movie))

	return err
}

func (r *MongoMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	current := movie.Version

	updated := *movie
	updated.UpdatedAt = time.Now().UTC()
	updated.Version = current + 1

	filter := bson.M{"_id": movie.ID, "version": current}
	update := bson.M{"$set": bson.M{
		"title":      updated.Title,
		"overview":   updated.Overview,
		"poster":     updated.Poster,
		"backdrop":   updated.Backdrop,
		"rating":     updated.Rating,
		"year":       updated.Year,
		"genre":      domain.GenreStrings(updated.Genres),
		"duration":   updated.Duration,
		"director":   updated.Director,
		"cast":       nonNil(updated.Cast),
		"language":   updated.Language,
		"country":    updated.Country,
		"featured":   updated.Featured,
		"popularity": updated.Popularity,
		"tags":       nonNil(updated.Tags),
		"trailer":    updated.Trailer,
		"imdbId":     updated.IMDbID,
		"updatedAt":  updated.UpdatedAt,
		"version":    updated.Version,
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return domain.ErrEditConflict
	}

	movie.UpdatedAt = updated.UpdatedAt
	movie.Version = updated.Version

	return nil
}

func (r *MongoMovieRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// Reset removes every movie and the id counter, so ids start again at 1.
func (r *MongoMovieRepository) Reset(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return err
	}

	_, err = r.db.Collection(countersCollection).DeleteOne(ctx, bson.M{"_id": moviesCollection})

	return err
}

// nextID hands out sequential ids from a counters document so Mongo-backed
// movies share the integer id space of the SQL store.
func (r *MongoMovieRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	err := r.db.Collection(countersCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": moviesCollection}, bson.M{"$inc": bson.M{"seq": 1}}, opts).
		Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Seq, nil
}

// mongoFilter translates the structured criteria into a query document.
// Free-text search stays with the caller.
func mongoFilter(c domain.MovieCriteria) bson.M {
	filter := bson.M{}

	if len(c.Genres) > 0 {
		filter["genre"] = bson.M{"$in": domain.GenreStrings(c.Genres)}
	}

	if c.Year != nil {
		filter["year"] = *c.Year
	}

	if c.MinRating != nil {
		filter["rating"] = bson.M{"$gte": c.MinRating.InexactFloat64()}
	}

	if c.Featured != nil {
		filter["featured"] = *c.Featured
	}

	return filter
}

func (d mongoMovie) toDomain() *domain.Movie {
	return &domain.Movie{
		ID:         d.ID,
		Title:      d.Title,
		Overview:   d.Overview,
		Poster:     d.Poster,
		Backdrop:   d.Backdrop,
		Rating:     d.Rating,
		Year:       d.Year,
		Genres:     domain.ToGenres(d.Genre),
		Duration:   d.Duration,
		Director:   d.Director,
		Cast:       d.Cast,
		Language:   d.Language,
		Country:    d.Country,
		Featured:   d.Featured,
		Popularity: d.Popularity,
		Tags:       d.Tags,
		Trailer:    d.Trailer,
		IMDbID:     d.IMDbID,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
		Version:    d.Version,
	}
}

func fromDomain(m *domain.Movie) mongoMovie {
	return mongoMovie{
		ID:         m.ID,
		Title:      m.Title,
		Overview:   m.Overview,
		Poster:     m.Poster,
		Backdrop:   m.Backdrop,
		Rating:     m.Rating,
		Year:       m.Year,
		Genre:      domain.GenreStrings(m.Genres),
		Duration:   m.Duration,
		Director:   m.Director,
		Cast:       nonNil(m.Cast),
		Language:   m.Language,
		Country:    m.Country,
		Featured:   m.Featured,
		Popularity: m.Popularity,
		Tags:       nonNil(m.Tags),
		Trailer:    m.Trailer,
		IMDbID:     m.IMDbID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		Version:    m.Version,
	}
}
