package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/kids-in-business/kib_api/model"
	"github.com/kids-in-business/kib_api/shared"
)

func strPtr(s string) *string {
	return &s
}

// fallbackActivities is the static catalog inserted once when the remote
// catalog is empty. Slugs are stable so badge art keeps matching; ids and
// creation timestamps are assigned at seed time, staggered to preserve
// list order.
func fallbackActivities() []model.Activity {
	base := time.Now()

	seed := []struct {
		slug      string
		title     string
		desc      string
		duration  string
		chapter   string
		chapterID string
		category  string
	}{
		{"mini-1", "Η πρώτη μου ιδέα", "Σκέψου ένα πρόβλημα της καθημερινότητας και πρότεινε μια λύση.", "10'", "Η ιδέα", "ch-1", shared.CategoryMini},
		{"mini-2", "Ο πελάτης μου", "Περιέγραψε ποιος θα αγόραζε το προϊόν σου και γιατί.", "10'", "Η ιδέα", "ch-1", shared.CategoryMini},
		{"mini-3", "Το όνομα της επιχείρησης", "Διάλεξε όνομα και σχεδίασε ένα λογότυπο.", "15'", "Η ταυτότητα", "ch-2", shared.CategoryMini},
		{"mini-4", "Πόσο κοστίζει;", "Υπολόγισε πόσο κοστίζει να φτιάξεις ένα κομμάτι του προϊόντος σου.", "15'", "Τα οικονομικά", "ch-3", shared.CategoryMini},
		{"mini-5", "Το σλόγκαν", "Γράψε ένα σύνθημα που θα θυμούνται όλοι.", "5'", "Η ταυτότητα", "ch-2", shared.CategoryMini},
		{"class-1", "Έρευνα αγοράς στην τάξη", "Ρωτήστε τους συμμαθητές σας τι θα αγόραζαν στο σχολικό παζάρι.", "1 διδακτική ώρα", "Η αγορά", "ch-4", shared.CategoryClass},
		{"class-2", "Παιχνίδι ρόλων: πωλητής και πελάτης", "Σκηνές πώλησης με εναλλαγή ρόλων και συζήτηση.", "1 διδακτική ώρα", "Η αγορά", "ch-4", shared.CategoryClass},
		{"class-3", "Ο προϋπολογισμός της τάξης", "Φτιάξτε μαζί τον προϋπολογισμό για μια σχολική εκδήλωση.", "2 διδακτικές ώρες", "Τα οικονομικά", "ch-3", shared.CategoryClass},
		{"class-4", "Διαφήμιση σε 60 δευτερόλεπτα", "Κάθε ομάδα γυρίζει ένα μικρό διαφημιστικό για το προϊόν της.", "2 διδακτικές ώρες", "Η προβολή", "ch-5", shared.CategoryClass},
		{"project-1", "Το σχολικό παζάρι", "Οργανώστε από την αρχή ένα παζάρι: προϊόντα, τιμές, ταμείο.", "2 εβδομάδες", "", "", shared.CategoryProject},
		{"project-2", "Η μικρή μας συνεταιριστική", "Στήστε μια μαθητική συνεταιριστική επιχείρηση με καταστατικό.", "1 μήνας", "", "", shared.CategoryProject},
		{"project-3", "Από την ιδέα στο ράφι", "Ακολουθήστε μια ιδέα μέχρι το τελικό προϊόν και την πώλησή του.", "1 μήνας", "", "", shared.CategoryProject},
	}

	activities := make([]model.Activity, len(seed))
	for i, s := range seed {
		id, _ := uuid.NewV7()
		created := base.Add(time.Duration(i) * time.Millisecond)

		activity := model.Activity{
			ID:          id.String(),
			Slug:        s.slug,
			Title:       s.title,
			Description: strPtr(s.desc),
			Duration:    strPtr(s.duration),
			Category:    s.category,
			CreatedAt:   created,
			UpdatedAt:   created,
		}
		if s.chapter != "" {
			activity.Chapter = strPtr(s.chapter)
			activity.ChapterID = strPtr(s.chapterID)
		}

		activities[i] = activity
	}

	return activities
}
