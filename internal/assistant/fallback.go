package assistant

import "github.com/placement-bot/backend/internal/concepts"

const (
	contactName  = "Γεώργιος Σοφιανίδης"
	contactEmail = "gsofianidis@mitropolitiko.edu.gr"
)

// FrequentQuestions is the curated quick-access list served to the UI.
var FrequentQuestions = []string{
	"Πώς ξεκινάω την πρακτική άσκηση;",
	"Τι έγγραφα χρειάζομαι;",
	"Πόσες ώρες πρέπει να κάνω;",
	"Πώς βγάζω ασφαλιστική ικανότητα;",
	"Με ποιον επικοινωνώ;",
}

// conceptResponses are the pre-written last-resort paragraphs, one per
// domain concept, each pointing the student to the responsible contact.
var conceptResponses = map[string]string{
	concepts.Documents: "Σχετικά με τα έγγραφα και τα δικαιολογητικά της πρακτικής άσκησης, " +
		"επικοινωνήστε με τον **" + contactName + "** (" + contactEmail + ") για λεπτομερείς οδηγίες.",
	concepts.Facilities: "Για ερωτήσεις σχετικά με τις δομές και τους φορείς όπου μπορείτε να κάνετε " +
		"την πρακτική σας, επικοινωνήστε με τον **" + contactName + "** στο " + contactEmail + ".",
	concepts.Sports: "Για θέματα σχετικά με το αθλητικό αντικείμενο της πρακτικής σας, " +
		"επικοινωνήστε με τον **" + contactName + "** στο " + contactEmail + ".",
	concepts.Time: "Για ερωτήσεις σχετικά με τις ώρες και τα χρονοδιαγράμματα, " +
		"επικοινωνήστε με τον **" + contactName + "** στο " + contactEmail + ".",
	concepts.Money: "Για οικονομικά θέματα της πρακτικής άσκησης, " +
		"επικοινωνήστε με τον **" + contactName + "** (" + contactEmail + ").",
	concepts.Process: "Για τη διαδικασία και τα βήματα της πρακτικής άσκησης, " +
		"επικοινωνήστε με τον **" + contactName + "** (" + contactEmail + ") για λεπτομερείς οδηγίες.",
	concepts.Contact: "Για αυτή την ερώτηση, παρακαλώ επικοινωνήστε απευθείας με τον υπεύθυνο " +
		"**" + contactName + "** στο " + contactEmail + ".",
}

const genericFallback = "Δεν βρήκα συγκεκριμένη απάντηση για αυτή την ερώτηση.\n\n" +
	"**Προτείνω:**\n" +
	"• Δοκιμάστε να αναδιατυπώσετε την ερώτηση με διαφορετικές λέξεις\n" +
	"• Επιλέξτε από τις συχνές ερωτήσεις\n" +
	"• Επικοινωνήστε με τον **" + contactName + "**: " + contactEmail

const adviceSuffix = "\n\n💡 **Συμβουλή:** Δοκιμάστε να διατυπώσετε την ερώτηση διαφορετικά " +
	"ή επιλέξτε από τις συχνές ερωτήσεις."

const verifySuffix = "\n\n⚠️ Η απάντηση δημιουργήθηκε χωρίς πρόσβαση στα επίσημα έγγραφα — " +
	"επιβεβαιώστε την με τον " + contactName + " (" + contactEmail + ")."

// conceptFallback picks the canned paragraph of the query's strongest
// concept, or the generic suggestion when no concept is detected.
func conceptFallback(question string) string {
	if top := concepts.Top(question); top != "" {
		if text, ok := conceptResponses[top]; ok {
			return text
		}
	}
	return genericFallback
}
