package shared

const (
	UserID    = "user_id"
	UserRole  = "user_role"
	SubjectID = "subject_id"

	// DeviceIDHeader identifies an anonymous browser/device so its
	// ledger keys stay isolated the way localStorage was per profile.
	DeviceIDHeader = "X-Device-ID"

	RoleTeacher = "teacher"
	RoleMentor  = "mentor"

	CategoryMini    = "mini"
	CategoryClass   = "class"
	CategoryProject = "project"

	FilterAll        = "all"
	FilterCompleted  = "completed"
	FilterIncomplete = "incomplete"
	FilterMine       = "mine"
)

// The three fixed classes available without an account. They are never
// created or destroyed, only renamed.
var PlaceholderClassIDs = []string{"class-a", "class-b", "class-c"}

var PlaceholderClassNames = map[string]string{
	"class-a": "Τμήμα Α",
	"class-b": "Τμήμα Β",
	"class-c": "Τμήμα Γ",
}

// AllowedDurations lists the valid duration labels per category.
// Duration is mandatory for mini and class activities, optional for
// projects.
var AllowedDurations = map[string][]string{
	CategoryMini:    {"5'", "10'", "15'"},
	CategoryClass:   {"1 διδακτική ώρα", "2 διδακτικές ώρες", "3 διδακτικές ώρες"},
	CategoryProject: {"1 εβδομάδα", "2 εβδομάδες", "1 μήνας", "3 μήνες"},
}

var DefaultActivityTitles = map[string]string{
	CategoryMini:    "Νέα μίνι πρόκληση",
	CategoryClass:   "Νέα δραστηριότητα τάξης",
	CategoryProject: "Νέο project",
}

// CelebrationMessages are picked at random when an activity flips to
// complete. Purely cosmetic.
var CelebrationMessages = []string{
	"Μπράβο! Τα κατάφερες!",
	"Εξαιρετική δουλειά!",
	"Συνέχισε έτσι, μικρέ επιχειρηματία!",
	"Είσαι αστέρι!",
	"Φοβερή προσπάθεια!",
	"Άλλη μία πρόκληση ολοκληρώθηκε!",
}

const HistoryLimit = 20
