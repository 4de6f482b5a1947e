package filestore

// ContentTypeCSV is sent with CSV uploads to Files.com.
const ContentTypeCSV = "text/csv"
