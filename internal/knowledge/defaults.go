package knowledge

// defaultEntries is the embedded seed dataset used whenever the external
// knowledge-base file cannot be loaded. It covers the questions students ask
// most, so the assistant stays useful even with no data directory at all.
func defaultEntries() []Entry {
	return []Entry{
		{
			ID:       1,
			Category: "Γενικές Πληροφορίες",
			Question: "Πώς ξεκινάω την πρακτική μου άσκηση;",
			Answer: "Για να ξεκινήσετε την πρακτική σας άσκηση, επικοινωνήστε με τον υπεύθυνο " +
				"Γεώργιο Σοφιανίδη (gsofianidis@mitropolitiko.edu.gr). Πρέπει να συμπληρώσετε " +
				"240 ώρες πρακτικής άσκησης σε δομή της επιλογής σας.",
			Keywords: []string{"ξεκινάω", "πρακτική", "άσκηση", "αρχή", "πώς"},
		},
		{
			ID:       2,
			Category: "Έγγραφα",
			Question: "Τι έγγραφα χρειάζομαι για την πρακτική άσκηση;",
			Answer: "Χρειάζεστε τη σύμβαση πρακτικής άσκησης (διαθέσιμη στο Moodle), υπεύθυνη δήλωση " +
				"από το gov.gr και βεβαίωση ασφαλιστικής ικανότητας. Όλα τα έγγραφα κατατίθενται " +
				"υπογεγραμμένα και σφραγισμένα από τη δομή σας.",
			Keywords: []string{"έγγραφα", "δικαιολογητικά", "σύμβαση", "δήλωση", "φόρμες"},
		},
		{
			ID:       3,
			Category: "Ώρες & Προθεσμίες",
			Question: "Πόσες ώρες πρακτικής άσκησης πρέπει να συμπληρώσω;",
			Answer: "Απαιτούνται **240 ώρες** συνολικά, με καταληκτική ημερομηνία 30/4. Μπορείτε να " +
				"εργάζεστε Δευτέρα έως Σάββατο, μέχρι 8 ώρες την ημέρα.",
			Keywords: []string{"ώρες", "240", "διάρκεια", "πόσες", "χρονοδιάγραμμα"},
		},
		{
			ID:       4,
			Category: "Ασφάλιση",
			Question: "Πώς βγάζω βεβαίωση ασφαλιστικής ικανότητας;",
			Answer: "Η βεβαίωση ασφαλιστικής ικανότητας εκδίδεται ηλεκτρονικά από το gov.gr με τους " +
				"κωδικούς σας taxisnet. Αν αντιμετωπίσετε πρόβλημα, επικοινωνήστε με τον " +
				"Γεώργιο Σοφιανίδη (gsofianidis@mitropolitiko.edu.gr).",
			Keywords: []string{"ασφαλιστική", "ικανότητα", "βεβαίωση", "ασφάλιση"},
		},
		{
			ID:       5,
			Category: "Επικοινωνία",
			Question: "Με ποιον επικοινωνώ για την πρακτική άσκηση;",
			Answer: "Υπεύθυνος πρακτικής άσκησης είναι ο **Γεώργιος Σοφιανίδης**. " +
				"Email: gsofianidis@mitropolitiko.edu.gr",
			Keywords: []string{"επικοινωνία", "υπεύθυνος", "email", "βοήθεια"},
		},
	}
}
