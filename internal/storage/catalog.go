// ABOUTME: Seed exercise catalog written on first bootstrap.
// ABOUTME: Each entry carries a demonstration video link.
package storage

import "github.com/harperreed/lift/internal/models"

func video(id string) *string {
	url := "https://www.youtube.com/watch?v=" + id
	return &url
}

var seedCatalog = []models.Exercise{
	{Name: "Bench press", MuscleGroup: models.MuscleGroupPush, Video: video("rT7DgCr-3pg")},
	{Name: "Overhead press", MuscleGroup: models.MuscleGroupPush, Video: video("2yjwXTZQDDI")},
	{Name: "Push-up", MuscleGroup: models.MuscleGroupPush, Video: video("AhdtowFDKT0")},
	{Name: "Dips", MuscleGroup: models.MuscleGroupPush, Video: video("C5K416bIVpU")},
	{Name: "Incline dumbbell press", MuscleGroup: models.MuscleGroupPush, Video: video("8i2lFO6NNPI")},
	{Name: "Dumbbell chest press", MuscleGroup: models.MuscleGroupPush, Video: video("8i2lFO6NNPI")},
	{Name: "Dumbbell shoulder press", MuscleGroup: models.MuscleGroupPush, Video: video("qEwKCR5JCog")},
	{Name: "Chest fly", MuscleGroup: models.MuscleGroupPush, Video: video("eozdVDA78K0")},
	{Name: "Lateral raise", MuscleGroup: models.MuscleGroupPush, Video: video("3VcKaXpzqRo")},

	{Name: "Deadlift", MuscleGroup: models.MuscleGroupPull, Video: video("1ZXobu7JvvE")},
	{Name: "Pull-up", MuscleGroup: models.MuscleGroupPull, Video: video("XB_7En-zf_M")},
	{Name: "Barbell row", MuscleGroup: models.MuscleGroupPull, Video: video("G8l_8chR5BE")},
	{Name: "Dumbbell row", MuscleGroup: models.MuscleGroupPull, Video: video("roCP6wCXPqo")},
	{Name: "Seated cable row", MuscleGroup: models.MuscleGroupPull, Video: video("xQNrFHEMhI4")},
	{Name: "Dumbbell pullover", MuscleGroup: models.MuscleGroupPull, Video: video("mjnseqLB1qs")},
	{Name: "Barbell curl", MuscleGroup: models.MuscleGroupPull, Video: video("LY1V6UbRHFM")},
	{Name: "Dumbbell curl", MuscleGroup: models.MuscleGroupPull, Video: video("sAq_ocpRh_I")},
	{Name: "Face pull", MuscleGroup: models.MuscleGroupPull, Video: video("V8dZ3pyiCBo")},
	{Name: "Chin-up", MuscleGroup: models.MuscleGroupPull, Video: video("brhRXlOhsAM")},

	{Name: "Squat", MuscleGroup: models.MuscleGroupLegs, Video: video("Dy28eq2PjcM")},
	{Name: "Front squat", MuscleGroup: models.MuscleGroupLegs, Video: video("tlfahNdNPPI")},
	{Name: "Romanian deadlift", MuscleGroup: models.MuscleGroupLegs, Video: video("JCXUYuzwNrM")},
	{Name: "Leg press", MuscleGroup: models.MuscleGroupLegs, Video: video("GvRgijoJ2xY")},
	{Name: "Lunge", MuscleGroup: models.MuscleGroupLegs, Video: video("3lM8n0kAzHE")},
	{Name: "Calf raise", MuscleGroup: models.MuscleGroupLegs, Video: video("JbyjNymZOt0")},
	{Name: "Leg curl", MuscleGroup: models.MuscleGroupLegs, Video: video("ELOCsoDSmrg")},
	{Name: "Leg extension", MuscleGroup: models.MuscleGroupLegs, Video: video("YyvSfVjQeL0")},
	{Name: "Bulgarian split squat", MuscleGroup: models.MuscleGroupLegs, Video: video("2-UyDnC-sAU")},
}

// SeedCatalogSize is the number of exercises present after bootstrap.
func SeedCatalogSize() int {
	return len(seedCatalog)
}
