package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
)

const employeeCollection = "employees"

// EmployeeRepository implements ports.EmployeeRepository using MongoDB.
// ObjectID generation makes id assignment collision-free under concurrent
// creates, and $set updates replace the visible fields in a single document
// write, so readers never see a half-applied update.
type EmployeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{coll: db.Collection(employeeCollection)}
}

type employeeDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"first_name"`
	LastName  string             `bson:"last_name"`
	Email     string             `bson:"email"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := employeeDoc{
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert employee: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert employee: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a stored record.
		return nil, domain.ErrEmployeeNotFound
	}

	var doc employeeDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}

	return docToEmployee(&doc), nil
}

func (r *EmployeeRepository) Replace(ctx context.Context, id string, e *domain.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	update := bson.M{"$set": bson.M{
		"first_name": e.FirstName,
		"last_name":  e.LastName,
		"email":      e.Email,
		"updated_at": e.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("replace employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) List(ctx context.Context, filter ports.ListEmployeesFilter) ([]*domain.Employee, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Search != "" {
		re := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = []bson.M{
			{"first_name": re},
			{"last_name": re},
			{"email": re},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer cur.Close(ctx)

	var employees []*domain.Employee
	for cur.Next(ctx) {
		var doc employeeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode employee: %w", err)
		}
		employees = append(employees, docToEmployee(&doc))
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}

	return employees, total, nil
}

func docToEmployee(doc *employeeDoc) *domain.Employee {
	return &domain.Employee{
		ID:        doc.ID.Hex(),
		FirstName: doc.FirstName,
		LastName:  doc.LastName,
		Email:     doc.Email,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
