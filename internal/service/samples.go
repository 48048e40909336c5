package service

import "github.com/pageza/cookify/backend/internal/model"

func ptr[T any](v T) *T { return &v }

type sample struct {
	title       string
	description string
	ingredients []string
	steps       []string
	prepTime    float64
	difficulty  model.Difficulty
	category    string
	image       string
}

var samples = []sample{
	{
		title:       "Bread Omelette (for 2)",
		description: "Indian street-food breakfast: bread slices dipped in spiced egg and pan-fried until golden and crisp.",
		ingredients: []string{
			"4 bread slices",
			"3 large eggs",
			"1 small onion, finely chopped",
			"1 small tomato, finely chopped",
			"1 green chili, finely chopped (optional)",
			"2 tablespoons coriander leaves, chopped",
			"1/4 teaspoon turmeric powder",
			"1/4 teaspoon red chili powder",
			"Salt to taste",
			"2-3 tablespoons oil or butter",
		},
		steps: []string{
			"Beat the eggs in a wide, shallow bowl.",
			"Mix in onion, tomato, chili, coriander, the spices and salt.",
			"Heat a flat pan over medium heat with a tablespoon of oil.",
			"Dip a bread slice in the egg mixture, coating both sides.",
			"Fry 2-3 minutes per side until golden, pouring a little extra egg over dry spots.",
			"Repeat with the remaining slices and serve hot with ketchup or chutney.",
		},
		prepTime:   10,
		difficulty: model.DifficultyEasy,
		category:   "Breakfast",
		image:      "images/bread-omelette.png",
	},
	{
		title:       "Masala Omelette",
		description: "A fluffy omelette loaded with onion, tomato, chili and warm spices.",
		ingredients: []string{
			"3 eggs",
			"1 small onion, finely chopped",
			"1 small tomato, deseeded and chopped",
			"1 green chili, chopped",
			"1 tablespoon coriander leaves",
			"1/4 teaspoon turmeric powder",
			"Salt and pepper to taste",
			"1 tablespoon butter",
		},
		steps: []string{
			"Whisk the eggs with turmeric, salt and pepper.",
			"Stir in onion, tomato, chili and coriander.",
			"Melt butter in a pan over medium heat.",
			"Pour in the eggs and cook until the edges set.",
			"Fold, cook another minute and serve.",
		},
		prepTime:   8,
		difficulty: model.DifficultyEasy,
		category:   "Breakfast",
		image:      "images/masala-omelette.jpg",
	},
	{
		title:       "Vegetable Pulao",
		description: "Fragrant basmati rice cooked with whole spices and mixed vegetables.",
		ingredients: []string{
			"1 cup basmati rice, soaked 20 minutes",
			"1 cup mixed vegetables (carrot, beans, peas)",
			"1 onion, sliced",
			"1 bay leaf, 2 cloves, 2 cardamom pods, 1 small cinnamon stick",
			"1 teaspoon ginger-garlic paste",
			"2 tablespoons ghee",
			"2 cups water",
			"Salt to taste",
		},
		steps: []string{
			"Heat ghee and fry the whole spices until aromatic.",
			"Add onion and cook until golden, then the ginger-garlic paste.",
			"Add vegetables and sauté for 2 minutes.",
			"Add drained rice, water and salt; bring to a boil.",
			"Cover and simmer on low for 15 minutes, then rest 5 minutes and fluff.",
		},
		prepTime:   35,
		difficulty: model.DifficultyMedium,
		category:   "Lunch",
		image:      "images/veg-pulao.jpg",
	},
	{
		title:       "Paneer Butter Masala",
		description: "Soft paneer cubes in a rich, mildly spiced tomato and butter gravy.",
		ingredients: []string{
			"250 g paneer, cubed",
			"3 tomatoes, pureed",
			"1 onion, pureed",
			"10 cashews, soaked and ground",
			"2 tablespoons butter",
			"1 teaspoon ginger-garlic paste",
			"1 teaspoon Kashmiri chili powder",
			"1/2 teaspoon garam masala",
			"1 teaspoon kasuri methi",
			"2 tablespoons cream",
			"Salt to taste",
		},
		steps: []string{
			"Melt butter and cook the onion puree until it loses its raw smell.",
			"Add ginger-garlic paste, then the tomato puree; cook until the butter separates.",
			"Stir in chili powder, cashew paste and salt; simmer 5 minutes.",
			"Add paneer and garam masala and simmer 3 minutes.",
			"Finish with crushed kasuri methi and cream.",
		},
		prepTime:   30,
		difficulty: model.DifficultyMedium,
		category:   "Dinner",
		image:      "images/paneer-butter-masala.webp",
	},
	{
		title:       "Aloo Paratha",
		description: "Whole-wheat flatbread stuffed with spiced mashed potato.",
		ingredients: []string{
			"2 cups whole wheat flour",
			"3 potatoes, boiled and mashed",
			"1 green chili, chopped",
			"1/2 teaspoon cumin seeds",
			"1/2 teaspoon garam masala",
			"2 tablespoons coriander leaves",
			"Salt to taste",
			"Ghee for cooking",
		},
		steps: []string{
			"Knead the flour with water and a pinch of salt into a soft dough; rest 15 minutes.",
			"Mix the potato with chili, cumin, garam masala, coriander and salt.",
			"Roll a dough ball, place filling in the center, seal and roll out gently.",
			"Cook on a hot tawa, flipping and brushing with ghee until both sides are golden.",
			"Serve with yogurt, pickle or butter.",
		},
		prepTime:   25,
		difficulty: model.DifficultyEasy,
		category:   "Breakfast",
		image:      "images/aloo-paratha.webp",
	},
	{
		title:       "Chocolate Milkshake",
		description: "A thick, chilled chocolate shake ready in minutes.",
		ingredients: []string{
			"2 cups cold milk",
			"2 scoops chocolate ice cream",
			"2 tablespoons cocoa powder",
			"2 tablespoons sugar",
			"Chocolate syrup for garnish",
		},
		steps: []string{
			"Blend milk, ice cream, cocoa and sugar until smooth.",
			"Drizzle chocolate syrup inside the glasses.",
			"Pour the shake and serve immediately.",
		},
		prepTime:   5,
		difficulty: model.DifficultyEasy,
		category:   "Drinks",
		image:      "images/chocolate-milkshake.jpg",
	},
}

// SampleRecipes builds the first-run recipes, each with a fresh id and the
// given creation timestamp
func SampleRecipes(createdAt string, ids IDAllocator) model.Collection {
	out := make(model.Collection, 0, len(samples))
	for _, s := range samples {
		out = append(out, model.Recipe{
			ID:          ids.Next(),
			Title:       s.title,
			Description: s.description,
			Ingredients: append([]string(nil), s.ingredients...),
			Steps:       append([]string(nil), s.steps...),
			Category:    s.category,
			Difficulty:  s.difficulty,
			PrepTime:    ptr(s.prepTime),
			Image:       ptr(s.image),
			CreatedAt:   createdAt,
		})
	}
	return out
}
