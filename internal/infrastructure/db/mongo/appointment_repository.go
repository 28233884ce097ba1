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

const appointmentCollection = "appointments"

type MongoAppointmentRepository struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *MongoAppointmentRepository {
	return &MongoAppointmentRepository{coll: db.Collection(appointmentCollection)}
}

type mongoAppointment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Date      string             `bson:"date"`
	Time      string             `bson:"time"`
	DoctorID  string             `bson:"doctor_id"`
	PetID     string             `bson:"pet_id"`
	OwnerID   string             `bson:"owner_id"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func toMongoAppointment(a *domain.Appointment) mongoAppointment {
	return mongoAppointment{
		Date:      a.Date,
		Time:      a.Time,
		DoctorID:  a.DoctorID,
		PetID:     a.PetID,
		OwnerID:   a.OwnerID,
		CreatedAt: a.CreatedAt.Unix(),
		UpdatedAt: a.UpdatedAt.Unix(),
	}
}

func (ma *mongoAppointment) toDomain() *domain.Appointment {
	return &domain.Appointment{
		ID:        ma.ID.Hex(),
		Date:      ma.Date,
		Time:      ma.Time,
		DoctorID:  ma.DoctorID,
		PetID:     ma.PetID,
		OwnerID:   ma.OwnerID,
		CreatedAt: unixToTime(ma.CreatedAt),
		UpdatedAt: unixToTime(ma.UpdatedAt),
	}
}

func (r *MongoAppointmentRepository) FindAll(ctx context.Context) ([]domain.Appointment, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoAppointmentRepository) FindByPet(ctx context.Context, petID string) ([]domain.Appointment, error) {
	return r.findMany(ctx, bson.M{"pet_id": petID})
}

func (r *MongoAppointmentRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Appointment, error) {
	return r.findMany(ctx, bson.M{"owner_id": ownerID})
}

func (r *MongoAppointmentRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Appointment, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find appointments: %w", err)
	}
	defer cur.Close(ctx)

	appts := make([]domain.Appointment, 0)
	for cur.Next(ctx) {
		var ma mongoAppointment
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode appointment: %w", err)
		}
		appts = append(appts, *ma.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}
	return appts, nil
}

func (r *MongoAppointmentRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAppointmentNotFound
	}

	var ma mongoAppointment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoAppointmentRepository) FindBySlot(ctx context.Context, date, timeSlot string) (*domain.Appointment, error) {
	var ma mongoAppointment
	if err := r.coll.FindOne(ctx, bson.M{"date": date, "time": timeSlot}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment slot: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoAppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	res, err := r.coll.InsertOne(ctx, toMongoAppointment(appt))
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	created := *appt
	created.ID = oid.Hex()
	return &created, nil
}

func (r *MongoAppointmentRepository) Update(ctx context.Context, id string, appt *domain.Appointment) (*domain.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAppointmentNotFound
	}

	var updated mongoAppointment
	err = r.coll.FindOneAndReplace(
		ctx,
		bson.M{"_id": oid},
		toMongoAppointment(appt),
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return updated.toDomain(), nil
}

func (r *MongoAppointmentRepository) Delete(ctx context.Context, id string) (*domain.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAppointmentNotFound
	}

	var deleted mongoAppointment
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("delete appointment: %w", err)
	}
	return deleted.toDomain(), nil
}
