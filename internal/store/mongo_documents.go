package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/eat-around/models"
)

// userDocument is the stored form of a user. Empty strings are omitted so
// the partial unique indexes only cover real values.
type userDocument struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty"`
	Username          string               `bson:"username,omitempty"`
	Name              string               `bson:"name,omitempty"`
	Email             string               `bson:"email,omitempty"`
	PasswordHash      string               `bson:"passwordHash,omitempty"`
	Password          string               `bson:"password,omitempty"`
	Book              string               `bson:"book,omitempty"`
	Subject           string               `bson:"subject,omitempty"`
	SecurityQuestions securityQuestionsDoc `bson:"securityQuestions"`
	CreatedAt         time.Time            `bson:"createdAt"`
	UpdatedAt         time.Time            `bson:"updatedAt"`
}

type securityQuestionsDoc struct {
	FavouriteBook string `bson:"favouriteBook"`
	BestSubject   string `bson:"bestSubject"`
}

func newUserDocument(user models.User) userDocument {
	return userDocument{
		Username:     user.Username,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Password:     user.Password,
		Book:         user.Book,
		Subject:      user.Subject,
		SecurityQuestions: securityQuestionsDoc{
			FavouriteBook: user.SecurityQuestions.FavouriteBook,
			BestSubject:   user.SecurityQuestions.BestSubject,
		},
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func (d userDocument) model() models.User {
	return models.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Password:     d.Password,
		Book:         d.Book,
		Subject:      d.Subject,
		SecurityQuestions: models.SecurityQuestions{
			FavouriteBook: d.SecurityQuestions.FavouriteBook,
			BestSubject:   d.SecurityQuestions.BestSubject,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// orderDocument is the stored form of an order. Quantities are decoded as
// doubles so that records holding non-integer values still load, and a
// missing quantity counts as 1.
type orderDocument struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	Code          string              `bson:"code,omitempty"`
	ShopLocation  string              `bson:"shopLocation"`
	CustomerNotes string              `bson:"customerNotes"`
	OrderedAt     time.Time           `bson:"orderedAt"`
	User          *primitive.ObjectID `bson:"user,omitempty"`
	Items         []orderItemDocument `bson:"items"`
	CreatedAt     time.Time           `bson:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt"`
}

type orderItemDocument struct {
	Name     string  `bson:"name"`
	Quantity *float64 `bson:"quantity,omitempty"`
	Price    float64  `bson:"price"`
}

func newOrderDocument(order models.Order) orderDocument {
	doc := orderDocument{
		Code:          order.Code,
		ShopLocation:  order.ShopLocation,
		CustomerNotes: order.CustomerNotes,
		OrderedAt:     order.OrderedAt,
		Items:         make([]orderItemDocument, 0, len(order.Items)),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(order.UserID); err == nil {
		doc.User = &oid
	}
	for _, item := range order.Items {
		doc.Items = append(doc.Items, orderItemDocument{
			Name:     item.Name,
			Quantity: &item.Quantity,
			Price:    item.Price,
		})
	}
	return doc
}

func (d orderDocument) model() models.Order {
	order := models.Order{
		ID:            d.ID.Hex(),
		Code:          d.Code,
		ShopLocation:  d.ShopLocation,
		CustomerNotes: d.CustomerNotes,
		OrderedAt:     d.OrderedAt,
		Items:         make([]models.OrderItem, 0, len(d.Items)),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if d.User != nil {
		order.UserID = d.User.Hex()
	}
	for _, item := range d.Items {
		quantity := 1.0
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		order.Items = append(order.Items, models.OrderItem{
			Name:     item.Name,
			Quantity: quantity,
			Price:    item.Price,
		})
	}
	return order
}

type foodDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	Description string             `bson:"description"`
}

func newFoodDocument(food models.Food) foodDocument {
	return foodDocument{
		Name:        food.Name,
		Price:       food.Price,
		Category:    food.Category,
		Description: food.Description,
	}
}

func (d foodDocument) model() models.Food {
	return models.Food{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Price:       d.Price,
		Category:    d.Category,
		Description: d.Description,
	}
}
