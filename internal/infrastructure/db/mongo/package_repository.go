package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/southtrails/tours-api/internal/core/domain"
	"github.com/southtrails/tours-api/internal/core/ports"
)

const collectionPackages = "packages"

// PackageRepository persists tour packages in MongoDB.
type PackageRepository struct {
	col *mongo.Collection
}

func NewPackageRepository(db *mongo.Database) *PackageRepository {
	return &PackageRepository{col: db.Collection(collectionPackages)}
}

func (r *PackageRepository) Create(ctx context.Context, pkg *domain.TourPackage) (*domain.TourPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p := *pkg
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.col.InsertOne(ctx, &p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("insert package: %w", err)
	}
	return &p, nil
}

func (r *PackageRepository) FindByID(ctx context.Context, id string) (*domain.TourPackage, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *PackageRepository) FindBySlug(ctx context.Context, slug string) (*domain.TourPackage, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *PackageRepository) findOne(ctx context.Context, filter bson.M) (*domain.TourPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var pkg domain.TourPackage
	if err := r.col.FindOne(ctx, filter).Decode(&pkg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPackageNotFound
		}
		return nil, fmt.Errorf("find package: %w", err)
	}
	return &pkg, nil
}

// List returns active packages matching the filter. Featured-first ordering
// applies when the filter asks for featured packages, newest-first otherwise.
func (r *PackageRepository) List(ctx context.Context, filter ports.PackageFilter, page, limit int) ([]domain.TourPackage, int64, error) {
	query := bson.M{"is_active": true}

	if filter.Region != "" {
		query["region"] = filter.Region
	}
	if filter.MinPrice > 0 || filter.MaxPrice > 0 {
		price := bson.M{}
		if filter.MinPrice > 0 {
			price["$gte"] = filter.MinPrice
		}
		if filter.MaxPrice > 0 {
			price["$lte"] = filter.MaxPrice
		}
		query["base_price_per_pax"] = price
	}
	if filter.MinPax > 0 {
		query["min_pax"] = bson.M{"$lte": filter.MinPax}
	}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}
	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}

	sort := bson.D{{Key: "created_at", Value: -1}}
	if filter.Featured != nil && *filter.Featured {
		sort = bson.D{{Key: "featured", Value: -1}, {Key: "created_at", Value: -1}}
	}

	return r.page(ctx, query, sort, page, limit)
}

// ListAll returns every package, including inactive ones, for the back office.
func (r *PackageRepository) ListAll(ctx context.Context, page, limit int) ([]domain.TourPackage, int64, error) {
	return r.page(ctx, bson.M{}, bson.D{{Key: "created_at", Value: -1}}, page, limit)
}

func (r *PackageRepository) page(ctx context.Context, query bson.M, sort bson.D, page, limit int) ([]domain.TourPackage, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count packages: %w", err)
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list packages: %w", err)
	}
	defer cur.Close(ctx)

	packages := []domain.TourPackage{}
	if err := cur.All(ctx, &packages); err != nil {
		return nil, 0, fmt.Errorf("decode packages: %w", err)
	}
	return packages, total, nil
}

func (r *PackageRepository) ListFeatured(ctx context.Context, limit int) ([]domain.TourPackage, error) {
	return r.list(ctx, bson.M{"featured": true, "is_active": true}, limit)
}

func (r *PackageRepository) ListByRegion(ctx context.Context, region domain.Region, limit int) ([]domain.TourPackage, error) {
	return r.list(ctx, bson.M{"region": region, "is_active": true}, limit)
}

func (r *PackageRepository) list(ctx context.Context, query bson.M, limit int) ([]domain.TourPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer cur.Close(ctx)

	packages := []domain.TourPackage{}
	if err := cur.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("decode packages: %w", err)
	}
	return packages, nil
}

// Update replaces the mutable fields of a package. Counters are deliberately
// excluded so a stale admin payload cannot reset view or booking counts.
func (r *PackageRepository) Update(ctx context.Context, id string, pkg *domain.TourPackage) (*domain.TourPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"title":                pkg.Title,
		"slug":                 pkg.Slug,
		"short_desc":           pkg.ShortDesc,
		"long_desc":            pkg.LongDesc,
		"itinerary":            pkg.Itinerary,
		"min_pax":              pkg.MinPax,
		"max_pax":              pkg.MaxPax,
		"base_price_per_pax":   pkg.BasePricePerPax,
		"images":               pkg.Images,
		"region":               pkg.Region,
		"tags":                 pkg.Tags,
		"featured":             pkg.Featured,
		"inclusions":           pkg.Inclusions,
		"exclusions":           pkg.Exclusions,
		"cancellation_policy":  pkg.CancellationPolicy,
		"terms_and_conditions": pkg.TermsAndConditions,
		"commission_override":  pkg.CommissionOverride,
		"is_active":            pkg.IsActive,
		"updated_at":           pkg.UpdatedAt,
	}

	var updated domain.TourPackage
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPackageNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("update package: %w", err)
	}
	return &updated, nil
}

func (r *PackageRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPackageNotFound
	}
	return nil
}

func (r *PackageRepository) IncrementViews(ctx context.Context, id string) error {
	return r.increment(ctx, id, "view_count")
}

func (r *PackageRepository) IncrementBookings(ctx context.Context, id string) error {
	return r.increment(ctx, id, "booking_count")
}

func (r *PackageRepository) increment(ctx context.Context, id, field string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		return fmt.Errorf("increment %s: %w", field, err)
	}
	return nil
}

func (r *PackageRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *PackageRepository) CountFeaturedActive(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{"featured": true, "is_active": true})
}
