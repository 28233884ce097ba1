package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
)

const petCollection = "pets"

type MongoPetRepository struct {
	coll *mongo.Collection
}

func NewPetRepository(db *mongo.Database) *MongoPetRepository {
	return &MongoPetRepository{coll: db.Collection(petCollection)}
}

type mongoPet struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Species   string             `bson:"species"`
	Breed     string             `bson:"breed"`
	Size      string             `bson:"size"`
	Age       int                `bson:"age"`
	OwnerID   string             `bson:"owner_id"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func toMongoPet(p *domain.Pet) mongoPet {
	return mongoPet{
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		Size:      p.Size,
		Age:       p.Age,
		OwnerID:   p.OwnerID,
		CreatedAt: p.CreatedAt.Unix(),
		UpdatedAt: p.UpdatedAt.Unix(),
	}
}

func (mp *mongoPet) toDomain() *domain.Pet {
	return &domain.Pet{
		ID:        mp.ID.Hex(),
		Name:      mp.Name,
		Species:   mp.Species,
		Breed:     mp.Breed,
		Size:      mp.Size,
		Age:       mp.Age,
		OwnerID:   mp.OwnerID,
		CreatedAt: unixToTime(mp.CreatedAt),
		UpdatedAt: unixToTime(mp.UpdatedAt),
	}
}

func (r *MongoPetRepository) FindAll(ctx context.Context) ([]domain.Pet, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoPetRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Pet, error) {
	return r.findMany(ctx, bson.M{"owner_id": ownerID})
}

func (r *MongoPetRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Pet, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find pets: %w", err)
	}
	defer cur.Close(ctx)

	pets := make([]domain.Pet, 0)
	for cur.Next(ctx) {
		var mp mongoPet
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode pet: %w", err)
		}
		pets = append(pets, *mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate pets: %w", err)
	}
	return pets, nil
}

func (r *MongoPetRepository) FindByID(ctx context.Context, id string) (*domain.Pet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPetNotFound
	}

	var mp mongoPet
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("find pet: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoPetRepository) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	res, err := r.coll.InsertOne(ctx, toMongoPet(pet))
	if err != nil {
		return nil, fmt.Errorf("insert pet: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	created := *pet
	created.ID = oid.Hex()
	return &created, nil
}

func (r *MongoPetRepository) Update(ctx context.Context, id string, pet *domain.Pet) (*domain.Pet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPetNotFound
	}

	var updated mongoPet
	err = r.coll.FindOneAndReplace(
		ctx,
		bson.M{"_id": oid},
		toMongoPet(pet),
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("update pet: %w", err)
	}
	return updated.toDomain(), nil
}

func (r *MongoPetRepository) Delete(ctx context.Context, id string) (*domain.Pet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPetNotFound
	}

	var deleted mongoPet
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("delete pet: %w", err)
	}
	return deleted.toDomain(), nil
}
