package application

import "rentride_service/domain"

// DummyCars is the demo catalog fixture. Returned by value so seeding never
// mutates the shared slice.
func DummyCars() []domain.Car {
	return []domain.Car{
		{
			Brand:       "Toyota",
			Model:       "Camry",
			PricePerDay: 45,
			Type:        "sedan",
			Seats:       5,
			FuelType:    "hybrid",
			Available:   true,
			Images: []string{
				"https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=800&auto=format&fit=crop",
			},
		},
		{
			Brand:       "Honda",
			Model:       "Accord",
			PricePerDay: 48,
			Type:        "sedan",
			Seats:       5,
			FuelType:    "petrol",
			Available:   true,
			Images: []string{
				"https://images.unsplash.com/photo-1555215695-3004980ad54e?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1502877338535-766e1452684a?w=800&auto=format&fit=crop",
			},
		},
		{
			Brand:       "Tesla",
			Model:       "Model 3",
			PricePerDay: 75,
			Type:        "sedan",
			Seats:       5,
			FuelType:    "electric",
			Available:   true,
			Images: []string{
				"https://images.unsplash.com/photo-1617531653332-bd46c24f2068?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1560958089-b8a1929cea89?w=800&auto=format&fit=crop",
			},
		},
		{
			Brand:       "BMW",
			Model:       "3 Series",
			PricePerDay: 85,
			Type:        "sedan",
			Seats:       5,
			FuelType:    "petrol",
			Available:   true,
			Images: []string{
				"https://images.unsplash.com/photo-1555215695-3004980ad54e?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=800&auto=format&fit=crop",
			},
		},
		{
			Brand:       "Mercedes-Benz",
			Model:       "C-Class",
			PricePerDay: 90,
			Type:        "sedan",
			Seats:       5,
			FuelType:    "petrol",
			Available:   true,
			Images: []string{
				"https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&auto=format&fit=crop",
			},
		},
		{
			Brand:       "Audi",
			Model:       "A4",
			PricePerDay: 88,
			Type:        "sedan",
			Seats:       5,
			FuelType:    "petrol",
			Available:   true,
			Images: []string{
				"https://images.unsplash.com/photo-1606664515524-ed2f786a0ad6?w=800&auto=format&fit=crop",
			},
		},
		{
			Brand:       "Ford",
			Model:       "Explorer",
			PricePerDay: 65,
			Type:        "suv",
			Seats:       7,
			FuelType:    "petrol",
			Available:   true,
			Images: []string{
				"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1502877338535-766e1452684a?w=800&auto=format&fit=crop",
			},
		},
		{
			Brand:       "Jeep",
			Model:       "Grand Cherokee",
			PricePerDay: 70,
			Type:        "suv",
			Seats:       5,
			FuelType:    "diesel",
			Available:   true,
			Images: []string{
				"https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=800&auto=format&fit=crop",
			},
		},
		{
			Brand:       "Toyota",
			Model:       "RAV4",
			PricePerDay: 55,
			Type:        "suv",
			Seats:       5,
			FuelType:    "hybrid",
			Available:   true,
			Images: []string{
				"https://images.unsplash.com/photo-1502877338535-766e1452684a?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=800&auto=format&fit=crop",
			},
		},
		{
			Brand:       "Honda",
			Model:       "CR-V",
			PricePerDay: 52,
			Type:        "suv",
			Seats:       5,
			FuelType:    "hybrid",
			Available:   true,
			Images: []string{
				"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1502877338535-766e1452684a?w=800&auto=format&fit=crop",
			},
		},
		{
			Brand:       "Nissan",
			Model:       "Altima",
			PricePerDay: 42,
			Type:        "sedan",
			Seats:       5,
			FuelType:    "petrol",
			Available:   true,
			Images: []string{
				"https://images.unsplash.com/photo-1555215695-3004980ad54e?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=800&auto=format&fit=crop",
			},
		},
		{
			Brand:       "Chevrolet",
			Model:       "Tahoe",
			PricePerDay: 80,
			Type:        "suv",
			Seats:       7,
			FuelType:    "petrol",
			Available:   true,
			Images: []string{
				"https://images.unsplash.com/photo-1502877338535-766e1452684a?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=800&auto=format&fit=crop",
			},
		},
		{
			Brand:       "Hyundai",
			Model:       "Elantra",
			PricePerDay: 38,
			Type:        "sedan",
			Seats:       5,
			FuelType:    "petrol",
			Available:   true,
			Images: []string{
				"https://images.unsplash.com/photo-1555215695-3004980ad54e?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=800&auto=format&fit=crop",
			},
		},
		{
			Brand:       "Mazda",
			Model:       "CX-5",
			PricePerDay: 50,
			Type:        "suv",
			Seats:       5,
			FuelType:    "petrol",
			Available:   true,
			Images: []string{
				"https://images.unsplash.com/photo-1502877338535-766e1452684a?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=800&auto=format&fit=crop",
			},
		},
		{
			Brand:       "Volkswagen",
			Model:       "Jetta",
			PricePerDay: 40,
			Type:        "sedan",
			Seats:       5,
			FuelType:    "petrol",
			Available:   true,
			Images: []string{
				"https://images.unsplash.com/photo-1555215695-3004980ad54e?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=800&auto=format&fit=crop",
			},
		},
		{
			Brand:       "Porsche",
			Model:       "911",
			PricePerDay: 200,
			Type:        "coupe",
			Seats:       4,
			FuelType:    "petrol",
			Available:   true,
			Images: []string{
				"https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=800&auto=format&fit=crop",
			},
		},
	}
}
