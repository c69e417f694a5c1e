package textnorm

// synonyms maps common unaccented or misspelled Greek forms to the canonical
// accented forms used throughout the knowledge base.
var synonyms = map[string]string{
	"πως":    "πώς",
	"που":    "πού",
	"ποσες":  "πόσες",
	"ποσα":   "πόσα",
	"ποσο":   "πόσο",
	"ειναι":  "είναι",
	"πρεπει": "πρέπει",

	"χρειαζομαι": "χρειάζομαι",
	"θελω":       "θέλω",
	"μπορω":      "μπορώ",

	"πρακτικη": "πρακτική",
	"ασκηση":   "άσκηση",
	"εξασκηση": "άσκηση",
	"ξεκιναω":  "ξεκινάω",
	"ξεκινησω": "ξεκινάω",
	"αρχιζω":   "ξεκινάω",
	"εκκινω":   "ξεκινάω",

	"εγγραφα":        "έγγραφα",
	"χαρτια":         "έγγραφα",
	"δικαιολογητικα": "έγγραφα",
	"φορμες":         "φόρμες",
	"αιτηση":         "αίτηση",
	"δηλωση":         "δήλωση",

	"ωρες":           "ώρες",
	"ωραριο":         "ωράριο",
	"χρονος":         "χρόνος",
	"διαρκεια":       "διάρκεια",
	"προθεσμια":      "προθεσμία",
	"χρονοδιαγραμμα": "χρονοδιάγραμμα",

	"επικοινωνια": "επικοινωνία",
	"μιλαω":       "επικοινωνώ",
	"μιλησω":      "επικοινωνώ",
	"βοηθεια":     "βοήθεια",
	"υποστηριξη":  "βοήθεια",
	"τηλεφωνο":    "τηλέφωνο",
	"υπευθυνος":   "υπεύθυνος",

	"ασφαλιστικη": "ασφαλιστική",
	"ικανοτητα":   "ικανότητα",
	"ασφαλιση":    "ασφάλιση",
	"βεβαιωση":    "βεβαίωση",

	"δομη":        "δομή",
	"φορεα":       "φορέα",
	"εταιρια":     "δομή",
	"εταιρεια":    "δομή",
	"γυμναστηριο": "γυμναστήριο",
	"σωματειο":    "σωματείο",
	"συλλογος":    "σύλλογος",

	"συμβαση":    "σύμβαση",
	"υπογραφη":   "υπογραφή",
	"σφραγιδα":   "σφραγίδα",
	"διαδικασια": "διαδικασία",
	"βηματα":     "βήματα",

	"αξιολογηση": "αξιολόγηση",
	"βιβλιο":     "βιβλίο",
	"κριτηρια":   "κριτήρια",
	"βαθμος":     "βαθμός",

	"κοστος":     "κόστος",
	"χρηματα":    "χρήματα",
	"πληρωμη":    "πληρωμή",
	"αμοιβη":     "αμοιβή",
	"δωρεαν":     "δωρεάν",
	"οικονομικα": "οικονομικά",
	"τιμολογηση": "τιμολόγηση",
}
