package catalog

import "monastery-guide/internal/domain"

func defaultMonasteries() []domain.Monastery {
	return []domain.Monastery{
		{
			ID:             1,
			Name:           "Rumtek Monastery",
			Location:       "East Sikkim",
			Year:           1740,
			Description:    "One of the largest and most significant monasteries in Sikkim, serving as the main seat of the Karma Kagyu lineage in exile.",
			Image:          "images/Vikramjit-Kakati-Rumtek.jpeg",
			VirtualTourURL: "monastery-detail.html?id=1",
			Latitude:       27.3023,
			Longitude:      88.5636,
			Festivals:      []string{"Kagyed Dance Festival", "Mahakala Puja"},
		},
		{
			ID:             2,
			Name:           "Pemayangtse Monastery",
			Location:       "West Sikkim",
			Year:           1705,
			Description:    "One of the oldest and premier monasteries of Sikkim, founded by Lama Lhatsun Chempo.",
			Image:          "images/Entrance_to_Pemangytse_Gompa.jpeg",
			VirtualTourURL: "monastery-detail.html?id=2",
			Latitude:       27.3036,
			Longitude:      88.2519,
			Festivals:      []string{"Cham Dance", "Losoong Festival"},
		},
		{
			ID:             3,
			Name:           "Enchey Monastery",
			Location:       "Gangtok",
			Year:           1840,
			Description:    "Built on the site blessed by Lama Druptob Karpo, a tantric master known for his flying powers.",
			Image:          "images/Enchey_Monastery_in_Gangtok_district,_East_Sikkim.jpeg",
			VirtualTourURL: "monastery-detail.html?id=3",
			Latitude:       27.3391,
			Longitude:      88.6107,
			Festivals:      []string{"Detor Chaam", "Pang Lhabsol"},
		},
		{
			ID:             4,
			Name:           "Tashiding Monastery",
			Location:       "West Sikkim",
			Year:           1641,
			Description:    "One of the holiest Buddhist monasteries in Sikkim, located atop a heart-shaped hill.",
			Image:          "images/Mani_stone_slabs_outside_Tashiding_Monastery.jpeg",
			VirtualTourURL: "monastery-detail.html?id=4",
			Latitude:       27.3167,
			Longitude:      88.3667,
			Festivals:      []string{"Bumchu Festival"},
		},
		{
			ID:             5,
			Name:           "Phensang Monastery",
			Location:       "North Sikkim",
			Year:           1721,
			Description:    "Belonging to the Nyingmapa order, known for its beautiful architecture and religious Tibetan wall paintings.",
			Image:          "images/Phensong_Monastery.jpeg",
			VirtualTourURL: "monastery-detail.html?id=5",
			Latitude:       27.4167,
			Longitude:      88.5833,
			Festivals:      []string{"Annual Chaam Dance"},
		},
		{
			ID:             6,
			Name:           "Dubdi Monastery",
			Location:       "West Sikkim",
			Year:           1701,
			Description:    "The oldest monastery in Sikkim, also known as the Hermit's Cell, established by Lhatsun Namkha Jigme.",
			Image:          "images/Dubdi_Monastery_2.jpeg",
			VirtualTourURL: "monastery-detail.html?id=6",
			Latitude:       27.2833,
			Longitude:      88.2333,
			Festivals:      []string{"Drukpa Tseshi"},
		},
	}
}

func defaultFestivals() []domain.Festival {
	return []domain.Festival{
		{
			ID:          1,
			Name:        "Losoong Festival",
			Date:        "December 15-18, 2025",
			Location:    "Various Monasteries",
			Description: "Sikkimese New Year celebration with traditional dances and rituals.",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/6/6e/Losoong_Festival_Sikkim.jpg",
		},
		{
			ID:          2,
			Name:        "Bumchu Festival",
			Date:        "January 14, 2026",
			Location:    "Tashiding Monastery",
			Description: "Sacred water ceremony predicting the future of Sikkim for the coming year.",
			Image:       "images/Mani_stone_slabs_outside_Tashiding_Monastery.jpeg",
		},
		{
			ID:          3,
			Name:        "Kagyed Dance Festival",
			Date:        "February 8-10, 2026",
			Location:    "Rumtek Monastery",
			Description: "Masked dance festival representing the victory of good over evil.",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/2/2d/Kagyed_Dance_Sikkim.jpg",
		},
		{
			ID:          4,
			Name:        "Saga Dawa",
			Date:        "June 4, 2026",
			Location:    "All Monasteries",
			Description: "Celebrates Buddha's birth, enlightenment, and parinirvana (death).",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/7/7e/Saga_Dawa_Sikkim.jpg",
		},
		{
			ID:          5,
			Name:        "Pang Lhabsol",
			Date:        "August 23, 2026",
			Location:    "Enchey Monastery",
			Description: "Worship of Mount Khangchendzonga as the guardian deity of Sikkim.",
			Image:       "images/Enchey_Monastery_in_Gangtok_district,_East_Sikkim.jpeg",
		},
	}
}

// defaultPanorama is the sample tour shared by every monastery until real
// captures exist for each site.
func defaultPanorama() domain.PanoramaConfig {
	return domain.PanoramaConfig{
		Default: domain.PanoramaDefaults{
			FirstScene:        "entrance",
			Author:            "Monasteries 360°",
			SceneFadeDuration: 1000,
			AutoLoad:          true,
		},
		Scenes: map[string]domain.PanoramaScene{
			"entrance": {
				Title:    "Entrance",
				HFOV:     110,
				Type:     "equirectangular",
				Panorama: "https://pannellum.org/images/alma.jpg",
				HotSpots: []domain.HotSpot{
					{Pitch: -2.1, Yaw: 132.9, Type: "scene", Text: "Main Prayer Hall", SceneID: "prayer_hall"},
					{Pitch: -1.5, Yaw: 222.6, Type: "info", Text: "Entrance Gate"},
				},
			},
			"prayer_hall": {
				Title:    "Main Prayer Hall",
				HFOV:     110,
				Type:     "equirectangular",
				Panorama: "https://pannellum.org/images/bma-1.jpg",
				HotSpots: []domain.HotSpot{
					{Pitch: -0.6, Yaw: 37.1, Type: "scene", Text: "Entrance", SceneID: "entrance"},
					{Pitch: -2.1, Yaw: 132.9, Type: "scene", Text: "Buddha Statue", SceneID: "buddha_statue"},
				},
			},
			"buddha_statue": {
				Title:    "Buddha Statue",
				HFOV:     110,
				Type:     "equirectangular",
				Panorama: "https://pannellum.org/images/misery-bay-lake-superior-provincial-park-ontario-canada.jpg",
				HotSpots: []domain.HotSpot{
					{Pitch: -0.6, Yaw: 37.1, Type: "scene", Text: "Main Prayer Hall", SceneID: "prayer_hall"},
					{Pitch: -1.5, Yaw: 222.6, Type: "info", Text: "16th Century Buddha Statue"},
				},
			},
		},
	}
}
