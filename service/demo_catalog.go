package service

import "catalogo-iluminacao/models"

// demoProducts is the built-in catalog shown until a sheet is loaded
var demoProducts = [...]models.Product{
	{
		ID:             "1",
		Code:           "1",
		Name:           "Lustre Pendente Crystal",
		Description:    "Elegante lustre em cristal com estrutura em latão, ideal para salas de estar e jantar",
		Category:       "Lustres",
		ImageURL:       "https://images.unsplash.com/photo-1565558631492-a199066cfffa?w=400&h=300&fit=crop",
		Specifications: "Altura: 60cm | Diâmetro: 40cm | Lâmpadas: 6x E14 | Peso: 3,5kg",
	},
	{
		ID:             "2",
		Code:           "2",
		Name:           "Luminária de Parede Moderna",
		Description:    "Arandela moderna em alumínio anodizado com acabamento preto fosco",
		Category:       "Arandelas",
		ImageURL:       "https://images.unsplash.com/photo-1565558631492-a199066cfffa?w=400&h=300&fit=crop",
		Specifications: "Altura: 25cm | Profundidade: 15cm | Lâmpada: 1x G9 | Peso: 0,8kg",
	},
	{
		ID:             "3",
		Code:           "3",
		Name:           "Pendente Industrial Edison",
		Description:    "Luminária pendente com filamento aparente, design industrial vintage",
		Category:       "Pendentes",
		ImageURL:       "https://images.unsplash.com/photo-1516159260535-cb0881c9a5d4?w=400&h=300&fit=crop",
		Specifications: "Altura: 35cm | Diâmetro: 20cm | Lâmpada: 1x E27 | Peso: 0,6kg",
	},
	{
		ID:             "4",
		Code:           "4",
		Name:           "Plafon LED Redondo",
		Description:    "Luminária de teto em alumínio com LED integrado e luz branca fria",
		Category:       "Plafons",
		ImageURL:       "https://images.unsplash.com/photo-1606399676374-d1ce13896357?w=400&h=300&fit=crop",
		Specifications: "Diâmetro: 30cm | LED: 18W | 1200 lumens | Peso: 1,2kg",
	},
	{
		ID:             "5",
		Code:           "5",
		Name:           "Candelabro Dourado Clássico",
		Description:    "Candelabro em latão com acabamento dourado polido, 5 velas",
		Category:       "Candelabros",
		ImageURL:       "https://images.unsplash.com/photo-1578500494198-246f612d03b3?w=400&h=300&fit=crop",
		Specifications: "Altura: 50cm | Largura: 40cm | Velas: 5x E14 | Peso: 2,1kg",
	},
	{
		ID:             "6",
		Code:           "6",
		Name:           "Luminária de Piso Tripé",
		Description:    "Luminária de piso em madeira com base tripé, acabamento natural",
		Category:       "Luminárias Piso",
		ImageURL:       "https://images.unsplash.com/photo-1565558632069-b8b656b521b5?w=400&h=300&fit=crop",
		Specifications: "Altura: 160cm | Base: 50x50cm | Lâmpada: 1x E27 | Peso: 2,8kg",
	},
}

// DemoProducts returns a fresh copy of the built-in demo catalog
func DemoProducts() []models.Product {
	out := make([]models.Product, len(demoProducts))
	copy(out, demoProducts[:])
	return out
}
